package get_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID заведения"
	msgNotFound       = "заведение не найдено"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	venue, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /venues/{id} - Failed to get venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id} - Venue retrieved successfully: venue_id=%d", venueID)
	handlers.RespondJSON(w, http.StatusOK, venue)
}
