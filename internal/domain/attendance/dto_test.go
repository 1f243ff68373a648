package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

func validUpsertRequest() UpsertAttendanceRequest {
	return UpsertAttendanceRequest{
		EmployeeID:  "emp-1",
		DaysWorked:  decimal.NewFromInt(26),
		DaysAbsent:  decimal.NewFromInt(5),
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-31",
	}
}

func TestUpsertAttendanceRequestValid(t *testing.T) {
	req := validUpsertRequest()
	assert.NoError(t, req.Validate())
}

func TestUpsertAttendanceRequestDaysExceedPeriod(t *testing.T) {
	req := validUpsertRequest()
	req.DaysWorked = decimal.NewFromInt(32)

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "days_worked", errs[0].Field)
}

func TestUpsertAttendanceRequestAbsentExceedsPeriod(t *testing.T) {
	req := validUpsertRequest()
	req.PeriodStart = "2025-03-10"
	req.PeriodEnd = "2025-03-14"
	req.DaysWorked = decimal.NewFromInt(3)
	req.DaysAbsent = decimal.NewFromInt(6)

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "days_absent", errs[0].Field)
}

func TestUpsertAttendanceRequestFullPeriodAllowed(t *testing.T) {
	req := validUpsertRequest()
	req.DaysWorked = decimal.NewFromInt(31)
	req.DaysAbsent = decimal.Zero

	assert.NoError(t, req.Validate())
}
