package service

import (
	"errors"
	"fmt"

	"github.com/daphos/shift-service/internal/repository"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// CodeEmployeeInactive is the code returned when an inactive employee is edited.
const CodeEmployeeInactive = "EMPLOYEE_INACTIVE"

func mapRepoError(err error, resource, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return apperrors.MapError(fmt.Errorf("%s %s: %w", resource, id, err))
}

func inactiveEmployee(id string) error {
	return apperrors.NewConflictCode(CodeEmployeeInactive, "employee is inactive", map[string]any{"id": id})
}
