package milk

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func entry(t *testing.T, customerID int64, date, shift, milkType, qty, rate string) *models.Entry {
	t.Helper()
	q := dec(t, qty)
	r := dec(t, rate)
	return &models.Entry{
		CustomerID: customerID,
		Date:       day(t, date),
		Shift:      shift,
		MilkType:   milkType,
		QuantityL:  q,
		Rate:       r,
		Amount:     Amount(q, r),
	}
}

func TestSummarizeDayEmpty(t *testing.T) {
	s := SummarizeDay(day(t, "2024-03-01"), nil)

	require.Equal(t, "2024-03-01", s.Date)
	require.True(t, s.TotalLiters.IsZero())
	require.True(t, s.TotalAmount.IsZero())
	require.Zero(t, s.TotalCount)
	require.Zero(t, s.Morning.Count)
	require.Zero(t, s.Evening.Count)
	require.True(t, s.Morning.Cow.Liters.IsZero())
	require.True(t, s.Evening.Mix.Amount.IsZero())
}

func TestSummarizeDayTwoShiftScenario(t *testing.T) {
	// one customer, morning 10 L @ 35.50, evening 8 L @ 34.00
	entries := []*models.Entry{
		entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "10", "35.50"),
		entry(t, 1, "2024-03-01", models.ShiftEvening, models.MilkTypeCow, "8", "34.00"),
	}

	s := SummarizeDay(day(t, "2024-03-01"), entries)

	require.True(t, s.Morning.TotalLiters.Equal(dec(t, "10.00")))
	require.True(t, s.Morning.TotalAmount.Equal(dec(t, "355.00")))
	require.True(t, s.Evening.TotalLiters.Equal(dec(t, "8.00")))
	require.True(t, s.Evening.TotalAmount.Equal(dec(t, "272.00")))
	require.True(t, s.TotalLiters.Equal(dec(t, "18.00")))
	require.True(t, s.TotalAmount.Equal(dec(t, "627.00")))
	require.Equal(t, 1, s.Morning.Count)
	require.Equal(t, 1, s.Evening.Count)
	require.Equal(t, 1, s.TotalCount, "same customer across shifts counts once")
}

func TestSummarizeDayBucketsByMilkType(t *testing.T) {
	entries := []*models.Entry{
		entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "5", "30.00"),
		entry(t, 2, "2024-03-01", models.ShiftMorning, models.MilkTypeBuffalo, "4", "48.00"),
		entry(t, 3, "2024-03-01", models.ShiftMorning, models.MilkTypeMix, "3", "38.00"),
	}

	s := SummarizeDay(day(t, "2024-03-01"), entries)

	require.True(t, s.Morning.Cow.Liters.Equal(dec(t, "5")))
	require.True(t, s.Morning.Cow.Amount.Equal(dec(t, "150.00")))
	require.True(t, s.Morning.Buffalo.Liters.Equal(dec(t, "4")))
	require.True(t, s.Morning.Buffalo.Amount.Equal(dec(t, "192.00")))
	require.True(t, s.Morning.Mix.Liters.Equal(dec(t, "3")))
	require.True(t, s.Morning.Mix.Amount.Equal(dec(t, "114.00")))
	require.Equal(t, 3, s.Morning.Count)
	require.Equal(t, 3, s.TotalCount)
}

func TestSummarizeDayAdditiveAcrossShifts(t *testing.T) {
	entries := []*models.Entry{
		entry(t, 1, "2024-03-02", models.ShiftMorning, models.MilkTypeCow, "7.25", "33.10"),
		entry(t, 2, "2024-03-02", models.ShiftMorning, models.MilkTypeBuffalo, "2.5", "47.80"),
		entry(t, 1, "2024-03-02", models.ShiftEvening, models.MilkTypeCow, "6.75", "33.10"),
		entry(t, 3, "2024-03-02", models.ShiftEvening, models.MilkTypeMix, "4.4", "39.90"),
	}

	s := SummarizeDay(day(t, "2024-03-02"), entries)

	require.True(t, s.TotalLiters.Equal(s.Morning.TotalLiters.Add(s.Evening.TotalLiters)))
	require.True(t, s.TotalAmount.Equal(s.Morning.TotalAmount.Add(s.Evening.TotalAmount)))

	// shift totals equal the sum of their milk-type buckets
	morningBuckets := s.Morning.Cow.Amount.Add(s.Morning.Buffalo.Amount).Add(s.Morning.Mix.Amount)
	require.True(t, s.Morning.TotalAmount.Equal(morningBuckets))
}

func TestSummarizeCustomerPeriodTotals(t *testing.T) {
	entries := []*models.Entry{
		entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "10", "35.50"),
		entry(t, 1, "2024-03-02", models.ShiftMorning, models.MilkTypeCow, "8", "34.00"),
	}
	payments := []*models.Payment{
		{CustomerID: 1, Date: day(t, "2024-03-02"), Amount: dec(t, "200.00"), Mode: models.PaymentModeCash},
	}

	st := SummarizeCustomerPeriod(1, day(t, "2024-03-01"), day(t, "2024-03-07"), entries, payments)

	require.True(t, st.Totals.TotalMilkQuantity.Equal(dec(t, "18")))
	require.True(t, st.Totals.TotalMilkAmount.Equal(dec(t, "627.00")))
	require.True(t, st.Totals.TotalPaidAmount.Equal(dec(t, "200.00")))
	require.True(t, st.Totals.UnpaidAmount.Equal(dec(t, "427.00")))
	require.Len(t, st.Entries, 2)
	require.Len(t, st.Payments, 1)
}

func TestSummarizeCustomerPeriodEmpty(t *testing.T) {
	st := SummarizeCustomerPeriod(9, day(t, "2024-03-01"), day(t, "2024-03-07"), nil, nil)

	require.True(t, st.Totals.TotalMilkQuantity.IsZero())
	require.True(t, st.Totals.TotalMilkAmount.IsZero())
	require.True(t, st.Totals.TotalPaidAmount.IsZero())
	require.True(t, st.Totals.UnpaidAmount.IsZero())
	require.NotNil(t, st.Entries)
	require.NotNil(t, st.Payments)
	require.Empty(t, st.Entries)
	require.Empty(t, st.Payments)
}

func TestSummarizeSingleDayPeriodMatchesDailyContribution(t *testing.T) {
	entries := []*models.Entry{
		entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "10", "35.50"),
		entry(t, 1, "2024-03-01", models.ShiftEvening, models.MilkTypeCow, "8", "34.00"),
	}

	daily := SummarizeDay(day(t, "2024-03-01"), entries)
	st := SummarizeCustomerPeriod(1, day(t, "2024-03-01"), day(t, "2024-03-01"), entries, nil)

	require.True(t, st.Totals.TotalMilkQuantity.Equal(daily.TotalLiters))
	require.True(t, st.Totals.TotalMilkAmount.Equal(daily.TotalAmount))
}

func TestUnpaidMayBeNegative(t *testing.T) {
	u := Unpaid(dec(t, "100.00"), dec(t, "150.00"))
	require.True(t, u.Equal(dec(t, "-50.00")))
	require.Equal(t, "-50", u.String())
}

func TestSummarizeAllCustomersPeriod(t *testing.T) {
	customers := []*models.Customer{
		{ID: 1, SlNo: 1, Name: "Ramesh"},
		{ID: 2, SlNo: 2, Name: "Suresh"},
		{ID: 3, SlNo: 3, Name: "Mahesh"},
	}
	entries := []*models.Entry{
		entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "10", "35.50"),
		entry(t, 1, "2024-03-02", models.ShiftMorning, models.MilkTypeCow, "6", "35.50"),
		entry(t, 3, "2024-03-01", models.ShiftEvening, models.MilkTypeBuffalo, "5", "48.00"),
	}

	rows := SummarizeAllCustomersPeriod(customers, entries)

	require.Len(t, rows, 3)
	require.Equal(t, int64(1), rows[0].CustomerID)
	require.True(t, rows[0].TotalLiters.Equal(dec(t, "16")))
	require.True(t, rows[0].TotalAmount.Equal(dec(t, "568.00")))

	// customer 2 had no activity but still appears with zero totals
	require.Equal(t, int64(2), rows[1].CustomerID)
	require.True(t, rows[1].TotalLiters.IsZero())
	require.True(t, rows[1].TotalAmount.IsZero())

	require.Equal(t, int64(3), rows[2].CustomerID)
	require.True(t, rows[2].TotalAmount.Equal(dec(t, "240.00")))
}

func TestSummariesAreRepeatable(t *testing.T) {
	entries := []*models.Entry{
		entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "10", "35.50"),
	}

	first := SummarizeCustomerPeriod(1, day(t, "2024-03-01"), day(t, "2024-03-01"), entries, nil)
	second := SummarizeCustomerPeriod(1, day(t, "2024-03-01"), day(t, "2024-03-01"), entries, nil)

	require.True(t, first.Totals.TotalMilkAmount.Equal(second.Totals.TotalMilkAmount))
	require.True(t, first.Totals.UnpaidAmount.Equal(second.Totals.UnpaidAmount))
	require.Equal(t, len(first.Entries), len(second.Entries))
}

// guards against accidental re-rounding inside aggregation: sums are sums
// of already-rounded per-entry amounts
func TestSummariesDoNotReRound(t *testing.T) {
	e1 := entry(t, 1, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "1.333", "30.01")
	e2 := entry(t, 2, "2024-03-01", models.ShiftMorning, models.MilkTypeCow, "2.667", "30.01")
	require.Equal(t, "40", e1.Amount.String())     // 39.99333 → 40.00 at entry time
	require.Equal(t, "80.04", e2.Amount.String())  // 80.03667 → 80.04 at entry time

	s := SummarizeDay(day(t, "2024-03-01"), []*models.Entry{e1, e2})
	require.True(t, s.TotalAmount.Equal(decimal.RequireFromString("120.04")))
}
