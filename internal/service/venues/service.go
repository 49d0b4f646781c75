package venues

import (
	"context"
	"errors"
	"fmt"

	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-ScheduleService/internal/service/venues/models"
)

// Service сервис чтения карточки заведения
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заведений
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// GetByID получает заведение по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched venue id=%d", id)
	return models.FromDomainVenue(venue), nil
}
