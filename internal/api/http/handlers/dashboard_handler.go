package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/daphos/shift-service/internal/export"
	"github.com/daphos/shift-service/internal/service"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// DashboardHandler serves the per-employee metrics, the roster overview and the spreadsheet export.
type DashboardHandler struct {
	dashboard *service.DashboardService
	now       func() time.Time
}

// NewDashboardHandler constructs handler. now supplies the default reference time.
func NewDashboardHandler(dashboard *service.DashboardService, now func() time.Time) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, now: now}
}

// Dashboard GET /api/v1/employees/:id/dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	ref, err := parseReference(c.Query("ref"), h.now)
	if err != nil {
		return err
	}
	fullTime, err := parseFullTimeHours(c.Query("full_time_hours"))
	if err != nil {
		return err
	}
	d, err := h.dashboard.Dashboard(c.UserContext(), c.Params("id"), ref, fullTime)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dashboardResponse(d, ref)})
}

// Overview GET /api/v1/overview.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	ref, err := parseReference(c.Query("ref"), h.now)
	if err != nil {
		return err
	}
	entries, err := h.dashboard.Overview(c.UserContext(), ref)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rosterResponses(entries)})
}

// Export GET /api/v1/employees/:id/shifts/export.xlsx.
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	d, err := h.dashboard.Dashboard(c.UserContext(), c.Params("id"), h.now(), 0)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteShifts(&buf, d.Employee, d.Shifts); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="shifts-%s.xlsx"`, d.Employee.ID))
	return c.Send(buf.Bytes())
}
