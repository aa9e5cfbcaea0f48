package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/format"
	"github.com/sbilibin2017/cryptex-wallet/internal/projector"
)

// validateFields runs the struct tags of a request and maps the first failing
// field to its named error.
func (s *WalletService) validateFields(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].StructField() {
	case "Method":
		return ErrMissingMethod
	case "Reference":
		return ErrMissingReference
	case "Account":
		return ErrInvalidAccount
	}
	return fmt.Errorf("%w: %s", ErrMissingField, verrs[0].Field())
}

var (
	maxOperationMWK  = decimal.NewFromInt(MaxOperationMWK)
	maxOperationUSDT = decimal.NewFromInt(MaxOperationUSDT)
)

// wholeMWK accepts positive whole kwacha amounts up to MaxOperationMWK.
func wholeMWK(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() || !amount.IsInteger() {
		return 0, fmt.Errorf("%w: enter a whole MWK amount above zero", ErrInvalidAmount)
	}
	if amount.GreaterThan(maxOperationMWK) {
		return 0, fmt.Errorf("%w: at most %s per operation", ErrInvalidAmount, format.MWK(MaxOperationMWK))
	}
	return amount.IntPart(), nil
}

// usdtAmount rounds to cents and requires a positive result up to
// MaxOperationUSDT.
func usdtAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	usdt := amount.Round(2)
	if !usdt.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: enter a USDT amount of at least 0.01", ErrInvalidAmount)
	}
	if usdt.GreaterThan(maxOperationUSDT) {
		return decimal.Zero, fmt.Errorf("%w: at most %s per operation", ErrInvalidAmount, format.USDT(maxOperationUSDT))
	}
	return usdt, nil
}

// priceMWK values usdt at rate in whole MWK, up to MaxOperationMWK.
func priceMWK(usdt, rate decimal.Decimal) (int64, error) {
	value := projector.Price(usdt, rate)
	if value.GreaterThan(maxOperationMWK) {
		return 0, fmt.Errorf("%w: worth %s, at most %s per operation", ErrInvalidAmount, value.String(), format.MWK(MaxOperationMWK))
	}
	return value.IntPart(), nil
}
