package deduction

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateDeductionRequestTypes(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		wantErr bool
	}{
		{"debt allowed", "debt", false},
		{"savings allowed", "savings", false},
		{"damage allowed", "damage", false},
		{"other allowed", "other", false},
		{"monthly_debt allowed", "monthly_debt", false},
		{"hold rejected", "hold", true},
		{"unknown rejected", "garnishment", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateDeductionRequest{
				EmployeeID: "emp-1",
				Type:       tt.typ,
				Amount:     decimal.NewFromInt(100),
				Reason:     "test",
				Month:      "2026-05",
			}
			err := req.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() with type %q expected error, got nil", tt.typ)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() with type %q unexpected error: %v", tt.typ, err)
			}
		})
	}
}
