package duplicate_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	duplicateSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_schedule"
)

const (
	msgInvalidVenueID     = "некорректный ID заведения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры копирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgVenueNotFound      = "заведение не найдено"
	msgSourceDayClosed    = "исходный день закрыт по расписанию заведения"
	msgDayNotConfigured   = "у исходного дня нет строк расписания"
)

type Handler struct {
	useCase DuplicateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase DuplicateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/schedule/duplicate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/schedule/duplicate - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/schedule/duplicate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DuplicateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/schedule/duplicate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, venueID))
	if err != nil {
		switch {
		case errors.Is(err, duplicateSchedule.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/schedule/duplicate - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, duplicateSchedule.ErrSourceDayClosed):
			h.logger.Warn("POST /venues/{id}/schedule/duplicate - Source day closed: venue_id=%d, day=%d",
				venueID, req.SourceDay)
			handlers.RespondBadRequest(w, msgSourceDayClosed)

		case errors.Is(err, duplicateSchedule.ErrDayNotConfigured):
			h.logger.Warn("POST /venues/{id}/schedule/duplicate - Source day not configured: venue_id=%d, day=%d",
				venueID, req.SourceDay)
			handlers.RespondNotFound(w, msgDayNotConfigured)

		case errors.Is(err, duplicateSchedule.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/schedule/duplicate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /venues/{id}/schedule/duplicate - Failed to duplicate schedule: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/schedule/duplicate - Schedule duplicated: venue_id=%d, source=%d, applied=%d, skipped=%d, rows=%d, user_id=%d",
		venueID, req.SourceDay, len(result.AppliedDays), len(result.SkippedDays), result.RowsUpdated, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
