package close_day

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	closeDay "github.com/m04kA/SMC-ScheduleService/internal/usecase/close_day"
)

const (
	msgInvalidVenueID   = "некорректный ID заведения"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgVenueNotFound    = "заведение не найдено"
	msgDayNotConfigured = "у дня нет строк расписания"
	msgInvalidParams    = "некорректные параметры запроса"
)

type Handler struct {
	useCase CloseDayUseCase
	logger  Logger
}

func NewHandler(useCase CloseDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/days/{date}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/days/{date}/close - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("POST /venues/{id}/days/{date}/close - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/days/{date}/close - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &closeDay.Request{
		UserID:  userID,
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, closeDay.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/days/{date}/close - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, closeDay.ErrDayNotConfigured):
			h.logger.Warn("POST /venues/{id}/days/{date}/close - Day not configured: venue_id=%d, date=%s",
				venueID, vars["date"])
			handlers.RespondNotFound(w, msgDayNotConfigured)

		case errors.Is(err, closeDay.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/days/{date}/close - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /venues/{id}/days/{date}/close - Failed to close day: venue_id=%d, date=%s, error=%v",
				venueID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/days/{date}/close - Day closed: venue_id=%d, date=%s, overrides=%d, user_id=%d",
		venueID, vars["date"], result.OverridesWritten, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
