// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"leadscore_backend/platform/config"
	"leadscore_backend/platform/events"
	"leadscore_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// TenantResolver runs tenant resolution on every API request before the
	// domain handlers see it.
	TenantResolver gin.HandlerFunc
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
