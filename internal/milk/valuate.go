package milk

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// EntryInput is a candidate entry as submitted by an operator. Rate is the
// explicit operator rate; nil asks for chart resolution. RateSource may be
// left empty, in which case it is inferred from the presence of Rate.
type EntryInput struct {
	CustomerID int64
	Date       time.Time
	Shift      string
	MilkType   string
	QuantityL  decimal.Decimal
	Fat        *decimal.Decimal
	Snf        *decimal.Decimal
	Rate       *decimal.Decimal
	RateSource string
	Note       *string
}

// Valuation is the resolved price and computed amount for an entry
type Valuation struct {
	Rate       decimal.Decimal
	RateSource string
	Amount     decimal.Decimal
}

// Amount computes the line amount for a quantity and rate, rounded
// half-up to 2 decimal places to match currency display conventions.
// This is the only place an entry amount is ever rounded; summaries add
// up already-rounded amounts without re-rounding.
func Amount(quantityL, rate decimal.Decimal) decimal.Decimal {
	return quantityL.Mul(rate).Round(2)
}

// ValuateEntry validates a candidate entry and determines its rate and
// amount. A MANUAL rate must be positive; an AUTO rate is resolved from
// the chart and requires both fat and snf. A lookup miss or a missing
// rate is models.ErrNoRate wrapped as a validation error, never a silent
// zero.
func ValuateEntry(in EntryInput, slabs []*models.RateSlab) (*Valuation, error) {
	if err := validateEntryInput(in); err != nil {
		return nil, err
	}

	source := in.RateSource
	if source == "" {
		if in.Rate != nil {
			source = models.RateSourceManual
		} else {
			source = models.RateSourceAuto
		}
	}

	switch source {
	case models.RateSourceManual:
		if in.Rate == nil || !in.Rate.IsPositive() {
			return nil, models.NewValidationError(models.ErrNoRate.Error())
		}
		return &Valuation{
			Rate:       *in.Rate,
			RateSource: models.RateSourceManual,
			Amount:     Amount(in.QuantityL, *in.Rate),
		}, nil
	case models.RateSourceAuto:
		rate, ok := ResolveRate(slabs, in.MilkType, in.Fat, in.Snf)
		if !ok {
			return nil, models.NewValidationError(models.ErrNoRate.Error())
		}
		return &Valuation{
			Rate:       rate,
			RateSource: models.RateSourceAuto,
			Amount:     Amount(in.QuantityL, rate),
		}, nil
	default:
		return nil, models.NewValidationError(fmt.Sprintf("invalid rate source: %s", source))
	}
}

// RevalueEntry determines the rate for an edit of an existing entry.
// The business rule: once an operator has set the rate by hand, automatic
// resolution must not overwrite it until fat or snf change, at which
// point the override is cleared and the chart applies again.
//
// Clients echo the stored rate back on every edit without tagging it, so
// a submitted rate counts as a fresh manual override when it is tagged
// MANUAL or when it differs from the stored rate.
func RevalueEntry(prev *models.Entry, in EntryInput, slabs []*models.RateSlab) (*Valuation, error) {
	if err := validateEntryInput(in); err != nil {
		return nil, err
	}

	// A fresh manual rate always wins.
	if in.Rate != nil && in.RateSource != models.RateSourceAuto &&
		(in.RateSource == models.RateSourceManual || !in.Rate.Equal(prev.Rate)) {
		if !in.Rate.IsPositive() {
			return nil, models.NewValidationError(models.ErrNoRate.Error())
		}
		return &Valuation{
			Rate:       *in.Rate,
			RateSource: models.RateSourceManual,
			Amount:     Amount(in.QuantityL, *in.Rate),
		}, nil
	}

	// A standing override sticks while fat/snf are unchanged.
	if prev.RateSource == models.RateSourceManual && !sampleChanged(prev, in) {
		return &Valuation{
			Rate:       prev.Rate,
			RateSource: models.RateSourceManual,
			Amount:     Amount(in.QuantityL, prev.Rate),
		}, nil
	}

	rate, ok := ResolveRate(slabs, in.MilkType, in.Fat, in.Snf)
	if !ok {
		// No resolvable rate; an explicit one from the request may
		// still carry the entry.
		if in.Rate != nil && in.Rate.IsPositive() {
			return &Valuation{
				Rate:       *in.Rate,
				RateSource: models.RateSourceManual,
				Amount:     Amount(in.QuantityL, *in.Rate),
			}, nil
		}
		return nil, models.NewValidationError(models.ErrNoRate.Error())
	}
	return &Valuation{
		Rate:       rate,
		RateSource: models.RateSourceAuto,
		Amount:     Amount(in.QuantityL, rate),
	}, nil
}

// sampleChanged reports whether fat or snf differ between the stored
// entry and the edit
func sampleChanged(prev *models.Entry, in EntryInput) bool {
	return !decimalPtrEqual(prev.Fat, in.Fat) || !decimalPtrEqual(prev.Snf, in.Snf)
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func validateEntryInput(in EntryInput) error {
	if in.CustomerID <= 0 {
		return models.NewValidationError("customerId is required")
	}
	if in.Date.IsZero() {
		return models.NewValidationError("date is required")
	}
	if !ValidShift(in.Shift) {
		return models.NewValidationError(fmt.Sprintf("invalid shift: %s", in.Shift))
	}
	if !ValidMilkType(in.MilkType) {
		return models.NewValidationError(fmt.Sprintf("invalid milk type: %s", in.MilkType))
	}
	if in.QuantityL.IsNegative() {
		return models.NewValidationError("quantityL must not be negative")
	}
	return nil
}
