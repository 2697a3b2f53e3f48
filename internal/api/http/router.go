package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daphos/shift-service/internal/api/http/handlers"
	"github.com/daphos/shift-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Shifts         *handlers.ShiftsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are open; mutations require an operator
// token when authentication is enabled.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/auth/login", cfg.Auth.Login)

	operator := cfg.AuthMiddleware.RequireOperator
	v1 := app.Group("/api/v1")

	employees := v1.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Post("/", operator, cfg.Employees.Create)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", operator, cfg.Employees.Update)
	employees.Delete("/:id", operator, cfg.Employees.Delete)
	employees.Post("/:id/toggle-status", operator, cfg.Employees.ToggleStatus)
	employees.Get("/:id/shifts", cfg.Employees.ListShifts)
	employees.Post("/:id/shifts", operator, cfg.Employees.CreateShift)
	employees.Get("/:id/shifts/export.xlsx", cfg.Dashboard.Export)
	employees.Get("/:id/dashboard", cfg.Dashboard.Dashboard)

	shifts := v1.Group("/shifts")
	shifts.Get("/:id", cfg.Shifts.Get)
	shifts.Put("/:id", operator, cfg.Shifts.Update)
	shifts.Delete("/:id", operator, cfg.Shifts.Delete)

	v1.Get("/overview", cfg.Dashboard.Overview)
}
