package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/config"
	"github.com/liris-lib/library-service/internal/errs"
	md "github.com/liris-lib/library-service/pkg/middleware"
	"github.com/liris-lib/library-service/pkg/validate"
)

type Handler struct {
	svc      LibraryService
	sessions *scs.SessionManager
	cfg      *config.Config
	log      *zap.Logger
}

func New(svc LibraryService, sessions *scs.SessionManager, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HTTPErrorHandler = h.errorHandler
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     h.cfg.API.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(echo.WrapMiddleware(h.sessions.LoadAndSave))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout, h.sessionRequired)
	api.GET("/auth/me", h.Me, h.sessionRequired)

	api.GET("/publications", h.GetPublications)
	api.GET("/publications/:id", h.GetPublication)

	api.GET("/borrowings", h.GetBorrowings, h.sessionRequired)
	api.POST("/borrowings", h.CreateBorrowing, h.sessionRequired)
	api.PUT("/borrowings/:id/return", h.ReturnBorrowing, h.sessionRequired)

	api.GET("/reports/all-publications", h.ReportAllPublications)
	api.GET("/reports/user-borrowings/:email", h.ReportUserBorrowings, h.sessionRequired)
	api.GET("/reports/lab-value/:labID", h.ReportLabValue, h.sessionRequired, h.adminRequired)
	api.POST("/reports/can-borrow", h.ReportCanBorrow, h.sessionRequired)
	api.GET("/reports/lost-books", h.ReportLostBooks, h.sessionRequired, h.adminRequired)

	api.GET("/labs", h.GetLabs)
	api.GET("/users", h.GetUsers, h.sessionRequired, h.adminRequired)
	api.GET("/stats", h.GetStats)

	api.GET("/proposals", h.GetProposals, h.sessionRequired)
	api.POST("/proposals", h.CreateProposal, h.sessionRequired)
	api.PUT("/proposals/:id", h.UpdateProposal, h.sessionRequired, h.adminRequired)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// errorHandler keeps the wire taxonomy: route misses collapse to a
// generic endpoint-not-found body, unexpected errors leak nothing.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := he.Message
		if he.Code == http.StatusNotFound && msg == http.StatusText(http.StatusNotFound) {
			msg = "Endpoint not found"
		}
		text, ok := msg.(string)
		if !ok {
			text = http.StatusText(he.Code)
		}
		if err := c.JSON(he.Code, errs.ErrorResponse{Error: text}); err != nil {
			h.log.Error("errorHandler", zap.Error(err))
		}
		return
	}

	h.log.Error("internal server error", zap.Error(err), zap.String("path", c.Path()))
	if err := c.JSON(http.StatusInternalServerError, errs.ErrorResponse{Error: "Internal server error"}); err != nil {
		h.log.Error("errorHandler", zap.Error(err))
	}
}
