package domain_test

import (
	"testing"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldRateUnit_ToPerGram(t *testing.T) {
	assert.Equal(t, "6000", domain.PerTenGrams.ToPerGram(decimal.NewFromInt(60000)).String())
	assert.Equal(t, "6000", domain.PerGram.ToPerGram(decimal.NewFromInt(6000)).String())
	assert.Equal(t, "6000", domain.GoldRateUnit("").ToPerGram(decimal.NewFromInt(6000)).String())
}

func TestRateType_Valid(t *testing.T) {
	for _, rt := range domain.AllRateTypes {
		assert.True(t, rt.Valid(), string(rt))
	}
	assert.False(t, domain.RateType("SILVER").Valid())
}

func TestRateSnapshot_FillMissing(t *testing.T) {
	stored := domain.RateSnapshot{}.With(domain.RateGold24K, decimal.NewFromInt(6000))
	manual := domain.RateSnapshot{}.
		With(domain.RateGold24K, decimal.NewFromInt(1)).
		With(domain.RateGST, decimal.NewFromInt(3))

	filled := stored.FillMissing(manual)

	require.NotNil(t, filled.GoldRatePerGram)
	assert.True(t, filled.GoldRatePerGram.Equal(decimal.NewFromInt(6000)), "recorded rate must win over manual entry")
	require.NotNil(t, filled.GSTPercent)
	assert.True(t, filled.GSTPercent.Equal(decimal.NewFromInt(3)))
	assert.ElementsMatch(t,
		[]domain.RateType{domain.RateUSDINR, domain.RateCustomsDuty, domain.RateStateTax},
		filled.Missing())
	assert.Nil(t, stored.GSTPercent, "FillMissing must not mutate the receiver")
}
