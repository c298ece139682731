package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
)

func (h *Handler) GetBorrowings(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	borrowings, err := h.svc.ListBorrowings(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, borrowings)
}

func (h *Handler) CreateBorrowing(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	var req model.CreateBorrowingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.svc.CreateBorrowing(c.Request().Context(), id, req)
	if err != nil {
		var veto *errs.BorrowVeto
		switch {
		case errors.As(err, &veto):
			return echo.NewHTTPError(http.StatusForbidden, veto.Reason)
		case errors.Is(err, errs.ErrNoCopyAvailable):
			return echo.NewHTTPError(http.StatusNotFound, "No available copy in this lab")
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Publication or lab not found")
		}
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ReturnBorrowing(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	borrowingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	if err := h.svc.ReturnBorrowing(c.Request().Context(), id, borrowingID); err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyReturned), errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Borrowing not found or already returned")
		case errors.Is(err, errs.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book returned successfully"})
}
