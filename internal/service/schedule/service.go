package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

// Service сервис чтения сетки расписания для редактора
type Service struct {
	venueRepo    VenueRepository
	templateRepo TemplateRepository
	overrideRepo OverrideRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	venueRepo VenueRepository,
	templateRepo TemplateRepository,
	overrideRepo OverrideRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:    venueRepo,
		templateRepo: templateRepo,
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

// GetWeekdayGrid получает сетку шаблона на день недели без оверрайдов
// Используется редактором еженедельного расписания и ресинком после правок
func (s *Service) GetWeekdayGrid(ctx context.Context, venueID int64, day time.Weekday) (*models.WeekdayGridResponse, error) {
	s.logger.Info("GetWeekdayGrid: venue=%d, day=%d", venueID, int(day))

	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetWeekdayGrid: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetWeekdayGrid: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	templates, err := s.templateRepo.ListByDay(ctx, venueID, day)
	if err != nil {
		s.logger.Error("GetWeekdayGrid: failed to list templates for venue=%d, day=%d: %v",
			venueID, int(day), err)
		return nil, fmt.Errorf("%w: failed to list templates: %v", ErrInternal, err)
	}
	if len(templates) == 0 {
		s.logger.Warn("GetWeekdayGrid: venue=%d has no template rows for day=%d", venueID, int(day))
		return nil, ErrDayNotConfigured
	}

	slots := make([]domain.EffectiveSlot, len(templates))
	for i, t := range templates {
		slots[i] = domain.MergeEffective(t, nil)
	}

	return models.NewWeekdayGrid(venueID, day, slots), nil
}

// GetDayGrid получает эффективную сетку на конкретную дату:
// строки шаблона с наложенными датными оверрайдами
func (s *Service) GetDayGrid(ctx context.Context, venueID int64, date time.Time) (*models.DayGridResponse, error) {
	s.logger.Info("GetDayGrid: venue=%d, date=%s", venueID, date.Format(domain.DateFormat))

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetDayGrid: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetDayGrid: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	day := venue.Weekday(date)

	templates, err := s.templateRepo.ListByDay(ctx, venueID, day)
	if err != nil {
		s.logger.Error("GetDayGrid: failed to list templates for venue=%d, day=%d: %v",
			venueID, int(day), err)
		return nil, fmt.Errorf("%w: failed to list templates: %v", ErrInternal, err)
	}
	if len(templates) == 0 {
		s.logger.Warn("GetDayGrid: venue=%d has no template rows for day=%d", venueID, int(day))
		return nil, ErrDayNotConfigured
	}

	templateIDs := make([]int64, len(templates))
	for i, t := range templates {
		templateIDs[i] = t.ID
	}

	overrides, err := s.overrideRepo.ListByTemplatesAndDate(ctx, templateIDs, date)
	if err != nil {
		s.logger.Error("GetDayGrid: failed to list overrides for venue=%d, date=%s: %v",
			venueID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list overrides: %v", ErrInternal, err)
	}

	overrideByTemplate := make(map[int64]*domain.TimeSlotOverride, len(overrides))
	for _, o := range overrides {
		overrideByTemplate[o.ScheduleTemplateID] = o
	}

	slots := make([]domain.EffectiveSlot, len(templates))
	for i, t := range templates {
		slots[i] = domain.MergeEffective(t, overrideByTemplate[t.ID])
	}

	s.logger.Info("GetDayGrid: venue=%d, date=%s -> %d slots, %d overridden",
		venueID, date.Format(domain.DateFormat), len(slots), len(overrides))

	return models.NewDayGrid(venueID, date, day, slots), nil
}
