package http

import (
	"encoding/json"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/schedule"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved", result)
}

func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
