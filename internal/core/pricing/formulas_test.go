package pricing_test

import (
	"testing"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func intPtr(i int) *int {
	return &i
}

func TestFineWeight(t *testing.T) {
	tests := []struct {
		name      string
		netWeight string
		purity    int
		want      string
	}{
		{name: "22 karat", netWeight: "10", purity: 22, want: "9.17"},
		{name: "24 karat is the net weight", netWeight: "7.5", purity: 24, want: "7.50"},
		{name: "18 karat", netWeight: "12", purity: 18, want: "9.00"},
		{name: "zero weight", netWeight: "0", purity: 22, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.FineWeight(d(tt.netWeight), tt.purity)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestFineWeight_NeverExceedsNetWeight(t *testing.T) {
	weights := []string{"0", "0.001", "1", "3.333", "10", "250.75"}
	for _, w := range weights {
		for purity := domain.MinPurityKarat; purity <= domain.MaxPurityKarat; purity++ {
			net := d(w)
			fine := pricing.FineWeight(net, purity)
			expected := net.Mul(decimal.NewFromInt(int64(purity))).Div(decimal.NewFromInt(24))
			assert.True(t, fine.Equal(expected), "weight %s purity %d", w, purity)
			assert.True(t, fine.LessThanOrEqual(net), "weight %s purity %d", w, purity)
		}
	}
}

func TestGoldPricePerGram(t *testing.T) {
	assert.Equal(t, "5500.00", pricing.GoldPricePerGram(d("6000"), 22).StringFixed(2))
	assert.Equal(t, "4500.00", pricing.GoldPricePerGram(d("6000"), 18).StringFixed(2))
	assert.Equal(t, "6000.00", pricing.GoldPricePerGram(d("6000"), 24).StringFixed(2))
}

func TestGoldValue_IsLinear(t *testing.T) {
	price := d("5500")
	fine := d("9.25")
	base := pricing.GoldValue(price, fine)
	two := decimal.NewFromInt(2)

	assert.True(t, pricing.GoldValue(price.Mul(two), fine).Equal(base.Mul(two)))
	assert.True(t, pricing.GoldValue(price, fine.Mul(two)).Equal(base.Mul(two)))
}

func TestWastageAmount_UsesNetWeightAndKaratPrice(t *testing.T) {
	got := pricing.WastageAmount(d("10"), d("8"), d("5500"))
	assert.Equal(t, "4400.00", got.StringFixed(2))
}

func TestMakingAndTotalGoldAmount(t *testing.T) {
	making := pricing.MakingAmount(d("10"), d("500"))
	assert.Equal(t, "5000.00", making.StringFixed(2))

	total := pricing.TotalGoldAmount(d("50416.67"), d("4400"), making)
	assert.Equal(t, "59816.67", total.StringFixed(2))
}

func TestStoneTotal(t *testing.T) {
	t.Run("empty list costs nothing", func(t *testing.T) {
		assert.True(t, pricing.StoneTotal(nil).IsZero())
		assert.True(t, pricing.StoneTotal([]domain.StoneLineCost{}).IsZero())
	})

	t.Run("sums weight times rate", func(t *testing.T) {
		lines := []domain.StoneLineCost{
			{Code: "DIA1", WeightCarats: d("0.5"), RatePerCarat: d("40000")},
			{Code: "RUBY", WeightCarats: d("1.25"), RatePerCarat: d("1200")},
		}
		assert.Equal(t, "21500.00", pricing.StoneTotal(lines).StringFixed(2))
	})
}

func TestDiamondCarats(t *testing.T) {
	codes := pricing.NewDiamondCodeSet([]string{"DIA1", " dia2 "})
	lines := []domain.StoneLineCost{
		{Code: "dia1", WeightCarats: d("0.30")},
		{Code: "DIA2", WeightCarats: d("0.20")},
		{Code: "EMR", WeightCarats: d("2.00")},
	}

	assert.Equal(t, "0.50", pricing.DiamondCarats(lines, codes).StringFixed(2))
	assert.True(t, pricing.DiamondCarats(lines, nil).IsZero())
}

func TestCertificationCharge(t *testing.T) {
	assert.Equal(t, "750.00", pricing.CertificationCharge(d("0.5"), true, d("1500")).StringFixed(2))
	assert.True(t, pricing.CertificationCharge(d("0.5"), false, d("1500")).IsZero())
	assert.True(t, pricing.CertificationCharge(d("3"), false, d("99999")).IsZero())
}

func TestApplyGST(t *testing.T) {
	res := pricing.ApplyGST(d("10000"), d("3"))
	assert.Equal(t, "300.00", res.TaxAmount.StringFixed(2))
	assert.Equal(t, "10300.00", res.GrandTotal.StringFixed(2))
	assert.Nil(t, res.GrandTotalUSD)
}

func TestApplyUSDDuty(t *testing.T) {
	t.Run("tax is levied in dollars and converted back", func(t *testing.T) {
		res, err := pricing.ApplyUSDDuty(d("8300"), d("83"), d("10"), d("3.75"))
		require.NoError(t, err)
		require.NotNil(t, res.SubtotalUSD)

		assert.Equal(t, "13.75", res.TaxPercent.String())
		assert.Equal(t, "100.00", res.SubtotalUSD.StringFixed(2))
		assert.Equal(t, "13.75", res.TaxAmountUSD.StringFixed(2))
		assert.Equal(t, "113.75", res.GrandTotalUSD.StringFixed(2))
		assert.Equal(t, "1141.25", res.TaxAmount.StringFixed(2))
		assert.Equal(t, "9441.25", res.GrandTotal.StringFixed(2))
	})

	t.Run("zero dollar rate fails closed", func(t *testing.T) {
		_, err := pricing.ApplyUSDDuty(d("8300"), decimal.Zero, d("10"), d("3.75"))
		require.Error(t, err)
		fe, ok := pricing.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, pricing.FieldUSDToINRRate, fe.Field)
	})
}
