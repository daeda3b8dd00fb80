// Package http provides the HTTP handler layer for the tail risk analysis API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all analysis API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *AnalysisHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Analysis group
	analysis := api.Group("/analysis")
	analysis.POST("/flight", h.AnalyzeFlight)
	analysis.POST("/csv", h.AnalyzeCSV)
}
