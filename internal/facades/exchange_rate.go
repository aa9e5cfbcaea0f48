package facades

import (
	"context"
	"errors"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
)

// ErrNoRate is returned when the exchanger answers without a usable rate.
var ErrNoRate = errors.New("exchanger returned no rate")

// ExchangeRatesGRPCFacade reads exchange rates from the gw-exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRateForCurrency fetches how many toCurrency units one fromCurrency unit buys.
func (f *ExchangeRatesGRPCFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", fromCurrency, "to", toCurrency, "error", err)
		return decimal.Zero, err
	}
	if resp.Rate <= 0 {
		logger.Log.Warnw("exchanger returned a non-positive rate",
			"from", fromCurrency, "to", toCurrency, "rate", resp.Rate)
		return decimal.Zero, ErrNoRate
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
