package response

import (
	"errors"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/savings"
	"github.com/paydesk/payroll-backend-go/internal/domain/schedule"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSalaryRevisionNotFound):
		NotFound(w, "Salary revision not found")
	case errors.Is(err, employee.ErrInvalidPayrollGroup):
		BadRequest(w, "Invalid payroll group", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance period not found")
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Invalid attendance period", nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, deduction.ErrHoldNotFound):
		NotFound(w, "Hold not found")
	case errors.Is(err, deduction.ErrSystemManagedType):
		BadRequest(w, "Deduction type is system-managed", nil)

	// Savings and bonus domain errors
	case errors.Is(err, savings.ErrSavingsNotFound):
		NotFound(w, "Savings account not found")
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, "Bonus not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrDuplicateRun):
		Conflict(w, "Payroll already generated for this key")
	case errors.Is(err, payroll.ErrSettlementExists):
		Conflict(w, "Settlement record already exists for this month")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Settlement record not found")
	case errors.Is(err, payroll.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
