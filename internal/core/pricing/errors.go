package pricing

import (
	"errors"
	"fmt"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
)

// Input field names reported in a FieldError.
const (
	FieldMode                = "mode"
	FieldPurity              = "item.purity"
	FieldGrossWeight         = "item.grossWeight"
	FieldNetWeight           = "item.netWeight"
	FieldWastagePercent      = "charges.wastagePercent"
	FieldMakingCharge        = "charges.makingChargePerGram"
	FieldCertificationCharge = "charges.certificationChargePerCarat"
	FieldGoldRate            = "rates.goldRatePerGram"
	FieldUSDToINRRate        = "rates.usdToInrRate"
	FieldGSTPercent          = "rates.gstPercent"
	FieldCustomsDutyPercent  = "rates.customsDutyPercent"
	FieldStateTaxPercent     = "rates.stateTaxPercent"
)

// FieldError identifies the single input that blocked a pricing call.
// Err is one of apperrors.ErrMissingRate, apperrors.ErrInvalidInput or
// apperrors.ErrDivisionByZero.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// AsFieldError extracts a *FieldError from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func missingRate(field string) error {
	return &FieldError{Field: field, Reason: "rate not found, please enter manually", Err: apperrors.ErrMissingRate}
}

func missingInput(field string) error {
	return &FieldError{Field: field, Reason: "value is required", Err: apperrors.ErrInvalidInput}
}

func invalidInput(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: apperrors.ErrInvalidInput}
}

func divisionByZero(field string) error {
	return &FieldError{Field: field, Reason: "must be greater than zero", Err: apperrors.ErrDivisionByZero}
}

func stoneField(i int, name string) string {
	return fmt.Sprintf("item.stones[%d].%s", i, name)
}
