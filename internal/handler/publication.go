package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

const defaultPageSize = 20

func (h *Handler) GetPublications(c echo.Context) error {
	ctx := c.Request().Context()

	filter := model.PublicationFilter{
		Page:    1,
		PerPage: defaultPageSize,
		Search:  c.QueryParam("search"),
		Type:    c.QueryParam("type"),
	}

	var err error
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if filter.Page, err = strconv.Atoi(pageParam); err != nil || filter.Page < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("per_page"); sizeParam != "" {
		if filter.PerPage, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "per_page is invalid")
		}
	}
	filter.PerPage = model.ClampPageSize(filter.PerPage, h.cfg.API.MaxPageSize)

	if labParam := c.QueryParam("lab_id"); labParam != "" {
		labID, err := strconv.Atoi(labParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "lab_id is invalid")
		}
		filter.LabID = &labID
	}
	if availParam := c.QueryParam("available"); availParam != "" {
		if filter.Available, err = strconv.ParseBool(availParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available is invalid")
		}
	}

	list, err := h.svc.ListPublications(ctx, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetPublication(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	pub, err := h.svc.GetPublication(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Publication not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, pub)
}
