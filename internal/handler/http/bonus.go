package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

type BonusHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService}
}

func (h *bonusHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bonusService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created", result)
}

func (h *bonusHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "Query parameter 'month' is required", nil)
		return
	}

	result, err := h.bonusService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bonus ID is required", nil)
		return
	}

	if err := h.bonusService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted", nil)
}
