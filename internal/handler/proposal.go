package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (h *Handler) GetProposals(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	proposals, err := h.svc.ListProposals(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proposals)
}

func (h *Handler) CreateProposal(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req model.CreateProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	proposalID, date, err := h.svc.CreateProposal(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "Proposal created successfully",
		"id_proposal":   proposalID,
		"date_proposal": date,
	})
}

func (h *Handler) UpdateProposal(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	proposalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	var req model.UpdateProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.svc.UpdateProposal(c.Request().Context(), id, proposalID, req); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Proposal not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Proposal updated successfully"})
}
