package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/middleware"
)

const dateLayout = "2006-01-02"

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current instant. Defaults to time.Now.
	Clock func() time.Time
	// Location is the business timezone that decides which calendar day it is.
	// Defaults to UTC.
	Location *time.Location
}

// ServiceOption configures the common parts of a service.
type ServiceOption func(*BaseService)

// WithClock replaces the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithLocation sets the business timezone.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.Location = loc
	}
}

func newBaseService(options []ServiceOption) BaseService {
	var base BaseService
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current instant.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// Today returns today's calendar date in the business timezone, as midnight UTC.
// Dates are stored and compared in that form.
func (s *BaseService) Today() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return calendarDate(s.Now().In(loc))
}

// calendarDate drops the clock part of t, keeping its calendar day as midnight UTC.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", apperrors.ErrValidation, field)
	}
	return d, nil
}

// parseOptionalDate is parseDate for optional query values.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning, typically for a rejected request
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
