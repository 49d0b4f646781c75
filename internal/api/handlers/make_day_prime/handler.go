package make_day_prime

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	makeDayPrime "github.com/m04kA/SMC-ScheduleService/internal/usecase/make_day_prime"
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
	useCase MakeDayPrimeUseCase
	logger  Logger
}

func NewHandler(useCase MakeDayPrimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/days/{date}/prime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/days/{date}/prime - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("POST /venues/{id}/days/{date}/prime - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/days/{date}/prime - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &makeDayPrime.Request{
		UserID:  userID,
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, makeDayPrime.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/days/{date}/prime - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, makeDayPrime.ErrDayNotConfigured):
			h.logger.Warn("POST /venues/{id}/days/{date}/prime - Day not configured: venue_id=%d, date=%s",
				venueID, vars["date"])
			handlers.RespondNotFound(w, msgDayNotConfigured)

		case errors.Is(err, makeDayPrime.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/days/{date}/prime - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /venues/{id}/days/{date}/prime - Failed to make day prime: venue_id=%d, date=%s, error=%v",
				venueID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/days/{date}/prime - Day marked prime: venue_id=%d, date=%s, overrides=%d, skipped=%d, user_id=%d",
		venueID, vars["date"], result.OverridesWritten, result.SkippedClosed, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
