package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetLabs(c echo.Context) error {
	labs, err := h.svc.ListLabs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, labs)
}

func (h *Handler) GetUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
