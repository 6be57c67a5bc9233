package handlers_test

import (
	"testing"

	"github.com/SscSPs/jewellery_billing_app/internal/handlers"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRequest struct {
	RateType string `validate:"ratetype"`
	Mode     string `validate:"billingmode"`
	Purity   int    `validate:"karat"`
}

func TestRegisterDomainValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, handlers.RegisterDomainValidations(v))

	assert.NoError(t, v.Struct(taggedRequest{RateType: "GOLD_24K", Mode: "USD", Purity: 22}))

	err := v.Struct(taggedRequest{RateType: "SILVER", Mode: "EUR", Purity: 25})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	assert.ElementsMatch(t, []string{"ratetype", "billingmode", "karat"}, tags)
}

func TestRegisterValidators_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, handlers.RegisterValidators)
	assert.NotPanics(t, handlers.RegisterValidators)
}
