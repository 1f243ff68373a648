package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/savings"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

type SavingsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateContribution(w http.ResponseWriter, r *http.Request)
	Payout(w http.ResponseWriter, r *http.Request)
}

type savingsHandlerImpl struct {
	savingsService savings.SavingsService
}

func NewSavingsHandler(savingsService savings.SavingsService) SavingsHandler {
	return &savingsHandlerImpl{savingsService: savingsService}
}

func (h *savingsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.savingsService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *savingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.savingsService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *savingsHandlerImpl) UpdateContribution(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req savings.UpdateSavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.savingsService.UpdateContribution(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Savings contribution updated", result)
}

func (h *savingsHandlerImpl) Payout(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.savingsService.Payout(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Savings paid out", result)
}
