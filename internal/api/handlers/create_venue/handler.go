package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	createVenue "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_venue"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры заведения"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase CreateVenueUseCase
	logger  Logger
}

func NewHandler(useCase CreateVenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /venues - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createVenue.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /venues - Failed to create venue: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created successfully: venue_id=%d, template_rows=%d, user_id=%d",
		result.VenueID, result.TemplateRowCount, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
