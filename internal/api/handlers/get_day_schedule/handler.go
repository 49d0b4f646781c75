package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidVenueID   = "некорректный ID заведения"
	msgMissingDateOrDay = "нужен параметр date или dayOfWeek"
	msgAmbiguousDateDay = "параметры date и dayOfWeek взаимоисключающие"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDayOfWeek = "некорректный день недели, ожидается число 0-6"
	msgVenueNotFound    = "заведение не найдено"
	msgDayNotConfigured = "у дня нет строк расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/schedule
// Query params: date (YYYY-MM-DD, эффективная сетка с оверрайдами)
// либо dayOfWeek (0-6, сетка шаблона без оверрайдов)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/schedule - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	dayStr := r.URL.Query().Get("dayOfWeek")

	switch {
	case dateStr == "" && dayStr == "":
		h.logger.Warn("GET /venues/{id}/schedule - Missing date and dayOfWeek")
		handlers.RespondBadRequest(w, msgMissingDateOrDay)
		return
	case dateStr != "" && dayStr != "":
		h.logger.Warn("GET /venues/{id}/schedule - Both date and dayOfWeek provided")
		handlers.RespondBadRequest(w, msgAmbiguousDateDay)
		return
	}

	var result interface{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/schedule - Invalid date format: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.GetDayGrid(r.Context(), venueID, date)
		if err != nil {
			h.respondServiceError(w, venueID, err)
			return
		}
	} else {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 0 || day > 6 {
			h.logger.Warn("GET /venues/{id}/schedule - Invalid dayOfWeek: %q", dayStr)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
			return
		}
		result, err = h.service.GetWeekdayGrid(r.Context(), venueID, time.Weekday(day))
		if err != nil {
			h.respondServiceError(w, venueID, err)
			return
		}
	}

	h.logger.Info("GET /venues/{id}/schedule - Grid retrieved: venue_id=%d, date=%q, day=%q",
		venueID, dateStr, dayStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, venueID int64, err error) {
	switch {
	case errors.Is(err, schedule.ErrVenueNotFound):
		h.logger.Warn("GET /venues/{id}/schedule - Venue not found: venue_id=%d", venueID)
		handlers.RespondNotFound(w, msgVenueNotFound)

	case errors.Is(err, schedule.ErrDayNotConfigured):
		h.logger.Warn("GET /venues/{id}/schedule - Day not configured: venue_id=%d", venueID)
		handlers.RespondNotFound(w, msgDayNotConfigured)

	default:
		h.logger.Error("GET /venues/{id}/schedule - Failed to get grid: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
	}
}
