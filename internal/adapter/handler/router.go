package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Router holds all handlers
type Router struct {
	meetingHandler *Meeting
	systemHandler  *System
	authMW         echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers. authMW may be nil when
// API tokens are disabled.
func NewRouter(meetingHandler *Meeting, systemHandler *System, authMW echo.MiddlewareFunc) *Router {
	return &Router{
		meetingHandler: meetingHandler,
		systemHandler:  systemHandler,
		authMW:         authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.systemHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")
	if rt.authMW != nil {
		v1.Use(rt.authMW)
	}

	rt.setupMeetingRoutes(v1)
	rt.setupActionRoutes(v1)
	rt.setupDebugRoutes(v1)
}

// setupMeetingRoutes configures meeting, transcript, summary and export routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	h := rt.meetingHandler

	g.GET("/stats", h.GetStats)
	g.POST("/transcribe", h.Transcribe)
	g.POST("/summarize", h.Summarize)

	meetings := g.Group("/meetings")
	meetings.POST("", h.CreateMeeting)
	meetings.GET("", h.ListMeetings)
	meetings.GET("/:id", h.GetMeeting)
	meetings.DELETE("/:id", h.DeleteMeeting)

	meetings.POST("/:id/transcript", h.Transcribe)
	meetings.GET("/:id/transcript", h.GetTranscript)
	meetings.POST("/:id/summary", h.Summarize)
	meetings.GET("/:id/summary", h.GetSummary)

	meetings.GET("/:id/actions", h.ListMeetingActions)
	meetings.POST("/:id/actions", h.CreateAction)

	meetings.GET("/:id/export/summary", h.ExportSummary)
	meetings.GET("/:id/export/actions", h.ExportActions)
}

// setupActionRoutes configures cross-meeting action item routes
func (rt *Router) setupActionRoutes(g *echo.Group) {
	h := rt.meetingHandler

	actions := g.Group("/actions")
	actions.GET("", h.ListActions)
	actions.PATCH("/:id", h.UpdateAction)
	actions.DELETE("/:id", h.DeleteAction)
}

// setupDebugRoutes configures provider diagnostics
func (rt *Router) setupDebugRoutes(g *echo.Group) {
	debug := g.Group("/debug")
	debug.GET("/provider", rt.systemHandler.DebugProvider)
	debug.GET("/config", rt.systemHandler.DebugConfig)
}
