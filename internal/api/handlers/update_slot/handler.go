package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	updateSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_slot"
)

const (
	msgInvalidVenueID      = "некорректный ID заведения"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidParams       = "некорректные параметры слота"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgVenueNotFound       = "заведение не найдено"
	msgSlotNotFound        = "строка расписания не найдена"
	msgPartySizeNotOffered = "размер компании не входит в каталог заведения"
)

type Handler struct {
	useCase UpdateSlotUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/venues/{venueId}/schedule/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule/slot - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id}/schedule/slot - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, venueID)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule/slot - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSlot.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id}/schedule/slot - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateSlot.ErrSlotNotFound):
			h.logger.Warn("PUT /venues/{id}/schedule/slot - Slot not found: venue_id=%d, day=%d, time=%s",
				venueID, req.DayOfWeek, req.StartTime)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, updateSlot.ErrPartySizeNotOffered):
			h.logger.Warn("PUT /venues/{id}/schedule/slot - Party size not offered: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgPartySizeNotOffered)

		case errors.Is(err, updateSlot.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/schedule/slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PUT /venues/{id}/schedule/slot - Failed to update slot: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id}/schedule/slot - Slot updated: venue_id=%d, day=%d, time=%s, rows=%d, user_id=%d",
		venueID, req.DayOfWeek, req.StartTime, result.RowsUpdated, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
