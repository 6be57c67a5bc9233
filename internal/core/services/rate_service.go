package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/google/uuid"
)

const defaultRateListLimit = 100

// rateService implements the RateSvcFacade interface
type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new rate service.
func NewRateService(repo portsrepo.RateRepositoryFacade, options ...ServiceOption) portssvc.RateSvcFacade {
	return &rateService{
		BaseService: newBaseService(options),
		rateRepo:    repo,
	}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) RecordRate(ctx context.Context, req dto.RecordRateRequest, operator string) (*domain.Rate, error) {
	rateType := domain.RateType(req.RateType)
	if !rateType.Valid() {
		return nil, fmt.Errorf("%w: unknown rate type %q", apperrors.ErrValidation, req.RateType)
	}
	if req.Value == nil {
		return nil, fmt.Errorf("%w: value is required", apperrors.ErrValidation)
	}
	value := *req.Value
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: value must not be negative", apperrors.ErrValidation)
	}
	if (rateType == domain.RateGold24K || rateType == domain.RateUSDINR) && value.IsZero() {
		return nil, fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, rateType)
	}
	if req.Unit != "" && rateType != domain.RateGold24K {
		return nil, fmt.Errorf("%w: unit applies to %s only", apperrors.ErrValidation, domain.RateGold24K)
	}
	if rateType == domain.RateGold24K {
		value = domain.GoldRateUnit(req.Unit).ToPerGram(value)
	}

	date := s.Today()
	if req.DateEffective != "" {
		var err error
		if date, err = parseDate("dateEffective", req.DateEffective); err != nil {
			return nil, err
		}
	}

	rate := domain.Rate{
		RateID:        uuid.NewString(),
		RateType:      rateType,
		Value:         value,
		DateEffective: date,
		AuditFields:   domain.NewAuditFields(s.Now(), operator),
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save rate",
			slog.String("rate_type", string(rateType)),
			slog.String("date", date.Format(dateLayout)))
		return nil, fmt.Errorf("failed to record rate: %w", err)
	}

	s.LogInfo(ctx, "Rate recorded",
		slog.String("rate_id", rate.RateID),
		slog.String("rate_type", string(rateType)),
		slog.String("value", value.String()),
		slog.String("date", date.Format(dateLayout)))
	return &rate, nil
}

func (s *rateService) GetRate(ctx context.Context, rateType string, date string) (*domain.Rate, error) {
	t := domain.RateType(rateType)
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown rate type %q", apperrors.ErrValidation, rateType)
	}
	d, err := parseDate("date", date)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindRate(ctx, t, d)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s rate for %s: %w", t, date, err)
	}
	return rate, nil
}

func (s *rateService) GetTodaySnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	return s.GetSnapshot(ctx, s.Today())
}

func (s *rateService) GetSnapshot(ctx context.Context, date time.Time) (*domain.RateSnapshot, error) {
	date = calendarDate(date)
	rates, err := s.rateRepo.FindRatesForDate(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rates", slog.String("date", date.Format(dateLayout)))
		return nil, fmt.Errorf("failed to load rates for %s: %w", date.Format(dateLayout), err)
	}

	snapshot := domain.RateSnapshot{Date: date}
	for _, r := range rates {
		snapshot = snapshot.With(r.RateType, r.Value)
	}
	if missing := snapshot.Missing(); len(missing) > 0 {
		s.LogDebug(ctx, "Rates missing for date", slog.String("date", date.Format(dateLayout)), slog.Any("missing", missing))
	}
	return &snapshot, nil
}

func (s *rateService) ListRates(ctx context.Context, params dto.ListRatesParams) ([]domain.Rate, error) {
	filter := portsrepo.RateListFilter{
		RateType: domain.RateType(params.RateType),
		Limit:    params.Limit,
	}
	if filter.RateType != "" && !filter.RateType.Valid() {
		return nil, fmt.Errorf("%w: unknown rate type %q", apperrors.ErrValidation, params.RateType)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultRateListLimit
	}

	var err error
	if filter.From, err = parseOptionalDate("from", params.From); err != nil {
		return nil, err
	}
	if filter.To, err = parseOptionalDate("to", params.To); err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}

	rates, err := s.rateRepo.ListRates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}
