package availability

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	gateway AvailabilityGateway
	logger  *zap.Logger
}

func NewAvailabilityUsecase(gateway AvailabilityGateway, logger *zap.Logger) AvailabilityUsecase {
	return &availabilityUsecase{
		gateway: gateway,
		logger:  logger,
	}
}

// GetWeek always returns the fixed Monday..Sunday order. Days the upstream
// has no record for come back with empty times, meaning unavailable.
func (uc *availabilityUsecase) GetWeek(ctx context.Context, session *models.Session) ([]models.AvailabilityDay, error) {
	stored, err := uc.gateway.GetWeek(ctx, session.HospitalToken)
	if err != nil {
		return nil, err
	}
	return MergeWeek(stored), nil
}

// SaveWeek validates every configured window before anything is sent upstream,
// then replaces the whole seven-day schedule at once.
func (uc *availabilityUsecase) SaveWeek(ctx context.Context, session *models.Session, week []models.AvailabilityDay) error {
	if err := ValidateWeek(week); err != nil {
		return err
	}
	return uc.gateway.ReplaceWeek(ctx, session.HospitalToken, week)
}

// MergeWeek merges partial upstream data into the canonical weekday order.
func MergeWeek(stored []models.AvailabilityDay) []models.AvailabilityDay {
	byDay := make(map[string]models.AvailabilityDay, len(stored))
	for _, day := range stored {
		byDay[day.Day] = day
	}

	week := make([]models.AvailabilityDay, 0, len(constvars.DaysOfWeek))
	for _, name := range constvars.DaysOfWeek {
		if day, ok := byDay[name]; ok {
			week = append(week, day)
			continue
		}
		week = append(week, models.AvailabilityDay{Day: name})
	}
	return week
}

// ValidateWeek rejects any day where both times are set and the start is not
// strictly before the end. String comparison on zero-padded "HH:MM" equals
// chronological comparison, which is why it is used on purpose here.
func ValidateWeek(week []models.AvailabilityDay) error {
	for _, day := range week {
		if day.StartTime == "" || day.EndTime == "" {
			continue
		}
		if day.StartTime >= day.EndTime {
			return exceptions.ErrAvailabilityWindow(day.Day)
		}
	}
	return nil
}
