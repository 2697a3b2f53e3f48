package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/daphos/shift-service/internal/api/dto"
	"github.com/daphos/shift-service/internal/service"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// ShiftsHandler manages shifts addressed by their own id.
type ShiftsHandler struct {
	shifts *service.ShiftService
}

// NewShiftsHandler constructs handler.
func NewShiftsHandler(shifts *service.ShiftService) *ShiftsHandler {
	return &ShiftsHandler{shifts: shifts}
}

// Get GET /api/v1/shifts/:id.
func (h *ShiftsHandler) Get(c *fiber.Ctx) error {
	shift, err := h.shifts.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponse(shift)})
}

// Update PUT /api/v1/shifts/:id.
func (h *ShiftsHandler) Update(c *fiber.Ctx) error {
	var req dto.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := parseShiftRequest(req)
	if err != nil {
		return err
	}
	shift, err := h.shifts.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponse(shift)})
}

// Delete DELETE /api/v1/shifts/:id.
func (h *ShiftsHandler) Delete(c *fiber.Ctx) error {
	if err := h.shifts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
