package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/errs"
	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/pkg/auth"
)

const (
	sessionKeyEmail = "user_email"
	sessionKeyName  = "user_name"
	sessionKeyRole  = "user_role"
)

// sessionRequired resolves the server-side session into an auth identity
// on the request context.
func (h *Handler) sessionRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		email := h.sessions.GetString(req.Context(), sessionKeyEmail)
		if email == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}
		id := auth.Identity{
			Email: email,
			Name:  h.sessions.GetString(req.Context(), sessionKeyName),
			Role:  h.sessions.GetString(req.Context(), sessionKeyRole),
		}
		if id.Role == "" {
			id.Role = auth.RoleUser
		}
		c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), id)))
		return next(c)
	}
}

func (h *Handler) adminRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := auth.FromContext(c.Request().Context())
		if !ok || !id.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCreds) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	if err := h.sessions.RenewToken(ctx); err != nil {
		return err
	}
	h.sessions.Put(ctx, sessionKeyEmail, user.Email)
	h.sessions.Put(ctx, sessionKeyName, user.Name)
	h.sessions.Put(ctx, sessionKeyRole, user.Role)

	h.log.Info("user logged in", zap.String("email", user.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := identity(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Destroy(ctx); err != nil {
		return err
	}
	h.log.Info("user logged out", zap.String("email", id.Email))
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

func (h *Handler) Me(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	user, labs, err := h.svc.CurrentUser(c.Request().Context(), id.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user": user,
		"labs": labs,
		"role": id.Role,
	})
}
