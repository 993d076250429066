package api

import (
	"time"

	"TradeBoard/internal/state"
	"TradeBoard/internal/view"
	"TradeBoard/pkg/cache"
	xhttp "TradeBoard/pkg/http"
	xlogger "TradeBoard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HistoryRequest filters the rolling price history.
type HistoryRequest struct {
	N int `query:"n" json:"n" default:"20" validate:"gte=1,lte=100"`
}

// DashboardEchoHandler serves the rendered dashboard view over Echo.
type DashboardEchoHandler struct {
	logger   *xlogger.Logger
	store    *state.Store
	live     func() bool // stream connectivity probe
	cache    cache.Service
	cacheTTL time.Duration
}

// HandlerOption configures the handler.
type HandlerOption func(*DashboardEchoHandler)

// WithViewCache fronts the dashboard view with a short-TTL cache.
func WithViewCache(c cache.Service, ttl time.Duration) HandlerOption {
	return func(h *DashboardEchoHandler) {
		h.cache = c
		h.cacheTTL = ttl
	}
}

// NewDashboardEchoHandler creates the dashboard HTTP handler.
func NewDashboardEchoHandler(logger *xlogger.Logger, store *state.Store, live func() bool, opts ...HandlerOption) *DashboardEchoHandler {
	h := &DashboardEchoHandler{logger: logger, store: store, live: live}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/dashboard/history", h.History)
	e.GET("/healthz", h.Health)
}

// Dashboard returns the full rendered view.
func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	s, points := h.store.Snapshot()
	cacheKey := "view:" + s.Pair

	if h.cache != nil {
		var cached view.Dashboard
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			return xhttp.SuccessResponse(c, cached)
		}
	}

	d := view.Build(s, points)

	if h.cache != nil {
		if err := h.cache.Set(ctx, cacheKey, d, h.cacheTTL); err != nil {
			h.logger.Warn("dashboard: view cache set failed", xlogger.Error(err))
		}
	}
	return xhttp.SuccessResponse(c, d)
}

// History returns the most recent n price points, oldest first.
func (h *DashboardEchoHandler) History(c echo.Context) error {
	req := &HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	_, points := h.store.Snapshot()
	if len(points) > req.N {
		points = points[len(points)-req.N:]
	}
	return xhttp.SuccessResponse(c, points)
}

// Health reports stream connectivity. The dashboard stays displayable with a
// dead feed, so a disconnected stream is degraded, not down.
func (h *DashboardEchoHandler) Health(c echo.Context) error {
	status := "ok"
	if h.live != nil && !h.live() {
		status = "degraded"
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": status})
}
