package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListHolds(w http.ResponseWriter, r *http.Request)
	ClearHold(w http.ResponseWriter, r *http.Request)

	CreateDebtPayment(w http.ResponseWriter, r *http.Request)
	ListDebtPayments(w http.ResponseWriter, r *http.Request)
	GetDebtSummary(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deductionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction created", result)
}

func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")
	if employeeID == "" && month == "" {
		response.BadRequest(w, "Query parameter 'employee_id' or 'month' is required", nil)
		return
	}

	result, err := h.deductionService.List(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	var req deduction.UpdateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.deductionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction updated", result)
}

func (h *deductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	if err := h.deductionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deleted", nil)
}

func (h *deductionHandlerImpl) ListHolds(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "Query parameter 'month' is required", nil)
		return
	}

	result, err := h.deductionService.ListHolds(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) ClearHold(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Hold ID is required", nil)
		return
	}

	if err := h.deductionService.ClearHold(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hold cleared", nil)
}

func (h *deductionHandlerImpl) CreateDebtPayment(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDebtPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.deductionService.CreateDebtPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Debt payment recorded", result)
}

func (h *deductionHandlerImpl) ListDebtPayments(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter 'employee_id' is required", nil)
		return
	}

	result, err := h.deductionService.ListDebtPayments(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *deductionHandlerImpl) GetDebtSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter 'employee_id' is required", nil)
		return
	}

	result, err := h.deductionService.GetDebtSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
