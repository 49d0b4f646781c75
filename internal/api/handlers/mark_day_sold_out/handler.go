package mark_day_sold_out

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	markDaySoldOut "github.com/m04kA/SMC-ScheduleService/internal/usecase/mark_day_sold_out"
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
	useCase MarkDaySoldOutUseCase
	logger  Logger
}

func NewHandler(useCase MarkDaySoldOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/days/{date}/sold-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/days/{date}/sold-out - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("POST /venues/{id}/days/{date}/sold-out - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/days/{date}/sold-out - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &markDaySoldOut.Request{
		UserID:  userID,
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, markDaySoldOut.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/days/{date}/sold-out - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, markDaySoldOut.ErrDayNotConfigured):
			h.logger.Warn("POST /venues/{id}/days/{date}/sold-out - Day not configured: venue_id=%d, date=%s",
				venueID, vars["date"])
			handlers.RespondNotFound(w, msgDayNotConfigured)

		case errors.Is(err, markDaySoldOut.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/days/{date}/sold-out - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /venues/{id}/days/{date}/sold-out - Failed to mark day sold out: venue_id=%d, date=%s, error=%v",
				venueID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/days/{date}/sold-out - Day marked sold out: venue_id=%d, date=%s, overrides=%d, skipped=%d, user_id=%d",
		venueID, vars["date"], result.OverridesWritten, result.SkippedClosed, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
