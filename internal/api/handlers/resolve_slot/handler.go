package resolve_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	resolveSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_slot"
)

const (
	msgInvalidVenueID   = "некорректный ID заведения"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStartTime = "время начала слота обязательно"
	msgInvalidStartTime = "некорректный формат времени, ожидается HH:MM"
	msgInvalidPartySize = "некорректный размер компании"
	msgInvalidParams    = "некорректные параметры запроса"
	msgVenueNotFound    = "заведение не найдено"
	msgInvalidTimezone  = "у заведения некорректная таймзона"
)

type Handler struct {
	useCase ResolveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots/resolve
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM),
// partySize (required, из каталога заведения)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots/resolve - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{id}/slots/resolve - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("startTime")
	if timeStr == "" {
		h.logger.Warn("GET /venues/{id}/slots/resolve - Missing start time")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	partySize, err := strconv.Atoi(r.URL.Query().Get("partySize"))
	if err != nil || partySize <= 0 {
		h.logger.Warn("GET /venues/{id}/slots/resolve - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots/resolve - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := ParseStartTime(timeStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots/resolve - Invalid start time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	useCaseReq := &resolveSlot.Request{
		VenueID:   venueID,
		Date:      date,
		StartTime: startTime,
		PartySize: domain.PartySize(partySize),
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSlot.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/slots/resolve - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, resolveSlot.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/slots/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, resolveSlot.ErrInvalidTimezone):
			h.logger.Error("GET /venues/{id}/slots/resolve - Invalid venue timezone: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidTimezone)

		default:
			h.logger.Error("GET /venues/{id}/slots/resolve - Failed to resolve slot: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/slots/resolve - Slot resolved: venue_id=%d, date=%s, time=%s, available=%t",
		venueID, dateStr, timeStr, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
