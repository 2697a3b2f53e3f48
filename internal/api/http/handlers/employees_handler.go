package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/daphos/shift-service/internal/api/dto"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/service"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// EmployeesHandler manages roster endpoints and the shifts nested under an employee.
type EmployeesHandler struct {
	employees *service.EmployeeService
	shifts    *service.ShiftService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService, shifts *service.ShiftService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees, shifts: shifts}
}

// List GET /api/v1/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	query := domain.EmployeeQuery{
		Status: domain.EmployeeStatusFilter(c.Query("status")),
		Search: c.Query("q"),
		Sort:   domain.EmployeeSort(c.Query("sort")),
	}
	grouped := false
	if raw := c.Query("grouped"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.NewValidationError("grouped must be a boolean", map[string]any{"grouped": raw})
		}
		grouped = v
	}

	employees, err := h.employees.List(c.UserContext(), query)
	if err != nil {
		return err
	}
	if grouped {
		active, inactive := domain.SplitByActivity(employees)
		return c.JSON(fiber.Map{"data": dto.GroupedEmployeesResponse{
			Active:   employeeResponses(active),
			Inactive: employeeResponses(inactive),
		}})
	}
	return c.JSON(fiber.Map{"data": employeeResponses(employees)})
}

// Create POST /api/v1/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee, err := h.employees.Create(c.UserContext(), service.EmployeeInput{Name: req.Name, Role: req.Role})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Get GET /api/v1/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	employee, err := h.employees.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Update PUT /api/v1/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee, err := h.employees.Update(c.UserContext(), c.Params("id"), service.EmployeeInput{Name: req.Name, Role: req.Role})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// ToggleStatus POST /api/v1/employees/:id/toggle-status.
func (h *EmployeesHandler) ToggleStatus(c *fiber.Ctx) error {
	employee, err := h.employees.ToggleStatus(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// Delete DELETE /api/v1/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	if err := h.employees.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListShifts GET /api/v1/employees/:id/shifts.
func (h *EmployeesHandler) ListShifts(c *fiber.Ctx) error {
	shifts, err := h.shifts.ListByEmployee(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponses(shifts)})
}

// CreateShift POST /api/v1/employees/:id/shifts.
func (h *EmployeesHandler) CreateShift(c *fiber.Ctx) error {
	var req dto.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := parseShiftRequest(req)
	if err != nil {
		return err
	}
	shift, err := h.shifts.Create(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": shiftResponse(shift)})
}
