package milk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

func baseInput(t *testing.T) EntryInput {
	t.Helper()
	return EntryInput{
		CustomerID: 1,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Shift:      models.ShiftMorning,
		MilkType:   models.MilkTypeCow,
		QuantityL:  dec(t, "10"),
	}
}

func TestAmountRoundsHalfUp(t *testing.T) {
	require.Equal(t, "355", Amount(dec(t, "10"), dec(t, "35.50")).String())
	require.Equal(t, "34.13", Amount(dec(t, "1.5"), dec(t, "22.75")).String())
	// 2.675 * 1 would lose the half-cent under binary floats
	require.Equal(t, "2.68", Amount(dec(t, "1"), dec(t, "2.675")).String())
}

func TestAmountNoFloatDrift(t *testing.T) {
	// ten times 0.1 L at 1.00 must total exactly 1.00
	total := dec(t, "0")
	for i := 0; i < 10; i++ {
		total = total.Add(Amount(dec(t, "0.1"), dec(t, "1.00")))
	}
	require.True(t, total.Equal(dec(t, "1.00")))
}

func TestValuateManualRate(t *testing.T) {
	in := baseInput(t)
	in.Rate = decPtr(t, "35.50")

	v, err := ValuateEntry(in, nil)
	require.NoError(t, err)
	require.Equal(t, models.RateSourceManual, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "35.50")))
	require.True(t, v.Amount.Equal(dec(t, "355.00")))
}

func TestValuateAutoRate(t *testing.T) {
	in := baseInput(t)
	in.Fat = decPtr(t, "3.5")
	in.Snf = decPtr(t, "8.5")
	in.RateSource = models.RateSourceAuto

	v, err := ValuateEntry(in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceAuto, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "32.50")))
	require.True(t, v.Amount.Equal(dec(t, "325.00")))
}

func TestValuateLookupMissIsValidationError(t *testing.T) {
	in := baseInput(t)
	in.Fat = decPtr(t, "4.5")
	in.Snf = decPtr(t, "8.5")

	_, err := ValuateEntry(in, testSlabs(t))
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
	require.EqualError(t, err, "cannot save entry without rate")
}

func TestValuateRejectsZeroManualRate(t *testing.T) {
	in := baseInput(t)
	in.Rate = decPtr(t, "0")
	in.RateSource = models.RateSourceManual

	_, err := ValuateEntry(in, nil)
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
}

func TestValuateRejectsNegativeQuantity(t *testing.T) {
	in := baseInput(t)
	in.QuantityL = dec(t, "-1")
	in.Rate = decPtr(t, "30")

	_, err := ValuateEntry(in, nil)
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
}

func TestValuateRejectsBadShiftAndMilkType(t *testing.T) {
	in := baseInput(t)
	in.Shift = "NOON"
	in.Rate = decPtr(t, "30")
	_, err := ValuateEntry(in, nil)
	require.True(t, models.IsValidation(err))

	in = baseInput(t)
	in.MilkType = "GOAT"
	in.Rate = decPtr(t, "30")
	_, err = ValuateEntry(in, nil)
	require.True(t, models.IsValidation(err))
}

func TestValuateZeroQuantityIsAllowed(t *testing.T) {
	in := baseInput(t)
	in.QuantityL = dec(t, "0")
	in.Rate = decPtr(t, "35.50")

	v, err := ValuateEntry(in, nil)
	require.NoError(t, err)
	require.True(t, v.Amount.IsZero())
}

func prevEntry(t *testing.T) *models.Entry {
	t.Helper()
	fat := dec(t, "3.5")
	snf := dec(t, "8.5")
	return &models.Entry{
		ID:         7,
		CustomerID: 1,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Shift:      models.ShiftMorning,
		MilkType:   models.MilkTypeCow,
		QuantityL:  dec(t, "10"),
		Fat:        &fat,
		Snf:        &snf,
		Rate:       dec(t, "40.00"),
		RateSource: models.RateSourceManual,
		Amount:     dec(t, "400.00"),
	}
}

func TestRevalueManualOverrideSticksWhileSampleUnchanged(t *testing.T) {
	prev := prevEntry(t)
	in := baseInput(t)
	in.Fat = decPtr(t, "3.5")
	in.Snf = decPtr(t, "8.5")
	in.QuantityL = dec(t, "12")

	v, err := RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceManual, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "40.00")), "override must survive while fat/snf are unchanged")
	require.True(t, v.Amount.Equal(dec(t, "480.00")))
}

func TestRevalueSampleChangeClearsOverride(t *testing.T) {
	prev := prevEntry(t)
	in := baseInput(t)
	in.Fat = decPtr(t, "3.8") // fat changed
	in.Snf = decPtr(t, "8.5")

	v, err := RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceAuto, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "32.50")), "chart rate must apply once fat/snf change")
}

func TestRevalueFreshManualRateWins(t *testing.T) {
	prev := prevEntry(t)
	in := baseInput(t)
	in.Fat = decPtr(t, "3.8")
	in.Snf = decPtr(t, "8.5")
	in.Rate = decPtr(t, "45.00")
	in.RateSource = models.RateSourceManual

	v, err := RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceManual, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "45.00")))
}

func TestRevalueEditedRateWithoutSourceOverrides(t *testing.T) {
	// Clients send the rate field on every edit without a rateSource;
	// a changed value is an operator override and must take effect.
	prev := prevEntry(t)
	in := baseInput(t)
	in.Fat = decPtr(t, "3.5")
	in.Snf = decPtr(t, "8.5")
	in.Rate = decPtr(t, "45.00")

	v, err := RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceManual, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "45.00")), "edited rate must win over the standing override")
	require.True(t, v.Amount.Equal(dec(t, "450.00")))
}

func TestRevalueEditedRateWithoutSourceOverridesAutoEntry(t *testing.T) {
	prev := prevEntry(t)
	prev.Rate = dec(t, "32.50")
	prev.RateSource = models.RateSourceAuto
	in := baseInput(t)
	in.Fat = decPtr(t, "3.5")
	in.Snf = decPtr(t, "8.5")
	in.Rate = decPtr(t, "45.00")

	v, err := RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceManual, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "45.00")), "edited rate must win over chart resolution")
}

func TestRevalueEchoedRateKeepsStandingBehavior(t *testing.T) {
	// An unchanged rate echoed back is not an override.
	prev := prevEntry(t)
	in := baseInput(t)
	in.Fat = decPtr(t, "3.5")
	in.Snf = decPtr(t, "8.5")
	in.Rate = decPtr(t, "40.00")

	v, err := RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceManual, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "40.00")))

	// On an AUTO entry the chart keeps pricing the edit.
	prev.Rate = dec(t, "32.50")
	prev.RateSource = models.RateSourceAuto
	in.Rate = decPtr(t, "32.50")

	v, err = RevalueEntry(prev, in, testSlabs(t))
	require.NoError(t, err)
	require.Equal(t, models.RateSourceAuto, v.RateSource)
	require.True(t, v.Rate.Equal(dec(t, "32.50")))
}

func TestRevalueSampleChangeWithoutResolvableRateFails(t *testing.T) {
	prev := prevEntry(t)
	in := baseInput(t)
	in.Fat = decPtr(t, "4.5") // outside every band
	in.Snf = decPtr(t, "8.5")

	_, err := RevalueEntry(prev, in, testSlabs(t))
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
}
