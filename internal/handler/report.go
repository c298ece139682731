package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (h *Handler) ReportAllPublications(c echo.Context) error {
	items, err := h.svc.AllUniquePublications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ReportUserBorrowings(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	email := c.Param("email")
	if !id.IsAdmin() && id.Email != email {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	var labID *int
	if labParam := c.QueryParam("lab_id"); labParam != "" {
		v, err := strconv.Atoi(labParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "lab_id is invalid")
		}
		labID = &v
	}

	items, err := h.svc.UserBorrowedPublications(c.Request().Context(), email, labID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ReportLabValue(c echo.Context) error {
	labID, err := strconv.Atoi(c.Param("labID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "labID is invalid")
	}

	value, err := h.svc.LabValue(c.Request().Context(), labID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Lab not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, value)
}

func (h *Handler) ReportCanBorrow(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req model.CanBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	email := req.Email
	if email == "" {
		email = id.Email
	}

	verdict, err := h.svc.CanBorrow(c.Request().Context(), email, req.PublicationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verdict)
}

func (h *Handler) ReportLostBooks(c echo.Context) error {
	items, err := h.svc.LostBooks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
