package handlers

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the domain tags used in request DTOs
// (ratetype, billingmode, karat) to gin's validator engine. It panics when a
// tag cannot be registered, since binding any DTO that uses it would fail.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Validator engine is not go-playground/validator; domain tags not registered")
			panic("handlers: unexpected validator engine")
		}
		if err := RegisterDomainValidations(v); err != nil {
			slog.Error("Failed to register request validators", slog.String("error", err.Error()))
			panic(err)
		}
	})
}

// RegisterDomainValidations registers the domain tags on v.
func RegisterDomainValidations(v *validator.Validate) error {
	validations := []struct {
		tag string
		fn  validator.Func
	}{
		{"ratetype", func(fl validator.FieldLevel) bool {
			return domain.RateType(fl.Field().String()).Valid()
		}},
		{"billingmode", func(fl validator.FieldLevel) bool {
			return domain.BillingMode(fl.Field().String()).Valid()
		}},
		{"karat", func(fl validator.FieldLevel) bool {
			k := fl.Field().Int()
			return k >= domain.MinPurityKarat && k <= domain.MaxPurityKarat
		}},
	}
	for _, val := range validations {
		if err := v.RegisterValidation(val.tag, val.fn); err != nil {
			return fmt.Errorf("register %q validation: %w", val.tag, err)
		}
	}
	return nil
}
