package milk

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// DateLayout is the calendar-date wire format used everywhere. Dates
// carry no time of day and no timezone; "2024-03-05" means the same
// collection day in every timezone.
const DateLayout = "2006-01-02"

// SummarizeDay folds the entries of one calendar date into per-shift,
// per-milk-type totals. The caller passes exactly the entries of that
// date; an empty slice yields an all-zero summary, never an error.
func SummarizeDay(date time.Time, entries []*models.Entry) *models.DailySummary {
	s := &models.DailySummary{
		Date:        date.Format(DateLayout),
		TotalLiters: decimal.Zero,
		TotalAmount: decimal.Zero,
	}
	initShift(&s.Morning)
	initShift(&s.Evening)

	morningCustomers := map[int64]struct{}{}
	eveningCustomers := map[int64]struct{}{}
	dayCustomers := map[int64]struct{}{}

	for _, e := range entries {
		var shift *models.ShiftSummary
		var customers map[int64]struct{}
		switch e.Shift {
		case models.ShiftMorning:
			shift = &s.Morning
			customers = morningCustomers
		case models.ShiftEvening:
			shift = &s.Evening
			customers = eveningCustomers
		default:
			continue
		}

		var bucket *models.MilkTypeTotal
		switch e.MilkType {
		case models.MilkTypeCow:
			bucket = &shift.Cow
		case models.MilkTypeBuffalo:
			bucket = &shift.Buffalo
		case models.MilkTypeMix:
			bucket = &shift.Mix
		default:
			continue
		}

		bucket.Liters = bucket.Liters.Add(e.QuantityL)
		bucket.Amount = bucket.Amount.Add(e.Amount)
		shift.TotalLiters = shift.TotalLiters.Add(e.QuantityL)
		shift.TotalAmount = shift.TotalAmount.Add(e.Amount)
		customers[e.CustomerID] = struct{}{}
		dayCustomers[e.CustomerID] = struct{}{}
	}

	s.Morning.Count = len(morningCustomers)
	s.Evening.Count = len(eveningCustomers)
	s.TotalLiters = s.Morning.TotalLiters.Add(s.Evening.TotalLiters)
	s.TotalAmount = s.Morning.TotalAmount.Add(s.Evening.TotalAmount)
	s.TotalCount = len(dayCustomers)
	return s
}

func initShift(s *models.ShiftSummary) {
	s.Cow = models.MilkTypeTotal{Liters: decimal.Zero, Amount: decimal.Zero}
	s.Buffalo = models.MilkTypeTotal{Liters: decimal.Zero, Amount: decimal.Zero}
	s.Mix = models.MilkTypeTotal{Liters: decimal.Zero, Amount: decimal.Zero}
	s.TotalLiters = decimal.Zero
	s.TotalAmount = decimal.Zero
}

// SummarizeCustomerPeriod folds one customer's entries and payments over
// an inclusive date range into a period statement. The raw lists are kept
// for drill-down display, date ascending as fetched. A customer with no
// activity yields zero totals and empty lists.
func SummarizeCustomerPeriod(customerID int64, from, to time.Time, entries []*models.Entry, payments []*models.Payment) *models.PeriodStatement {
	totalQty := decimal.Zero
	totalMilk := decimal.Zero
	totalPaid := decimal.Zero

	for _, e := range entries {
		totalQty = totalQty.Add(e.QuantityL)
		totalMilk = totalMilk.Add(e.Amount)
	}
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	if entries == nil {
		entries = []*models.Entry{}
	}
	if payments == nil {
		payments = []*models.Payment{}
	}

	return &models.PeriodStatement{
		CustomerID: customerID,
		From:       from.Format(DateLayout),
		To:         to.Format(DateLayout),
		Totals: models.PeriodTotals{
			TotalMilkQuantity: totalQty,
			TotalMilkAmount:   totalMilk,
			TotalPaidAmount:   totalPaid,
			UnpaidAmount:      Unpaid(totalMilk, totalPaid),
		},
		Entries:  entries,
		Payments: payments,
	}
}

// SummarizeAllCustomersPeriod groups entries by customer over a period
// and returns one row per customer in the given customer order (the
// repositories fetch customers sorted by serial number). Customers with
// no activity in the range appear with zero totals, matching the
// cooperative-wide listing. Payments are not part of this report.
func SummarizeAllCustomersPeriod(customers []*models.Customer, entries []*models.Entry) []*models.CustomerPeriodTotal {
	type acc struct {
		liters decimal.Decimal
		amount decimal.Decimal
	}
	byCustomer := make(map[int64]*acc, len(customers))
	for _, e := range entries {
		a, ok := byCustomer[e.CustomerID]
		if !ok {
			a = &acc{liters: decimal.Zero, amount: decimal.Zero}
			byCustomer[e.CustomerID] = a
		}
		a.liters = a.liters.Add(e.QuantityL)
		a.amount = a.amount.Add(e.Amount)
	}

	rows := make([]*models.CustomerPeriodTotal, 0, len(customers))
	for _, c := range customers {
		row := &models.CustomerPeriodTotal{
			CustomerID:  c.ID,
			SlNo:        c.SlNo,
			Name:        c.Name,
			TotalLiters: decimal.Zero,
			TotalAmount: decimal.Zero,
		}
		if a, ok := byCustomer[c.ID]; ok {
			row.TotalLiters = a.liters
			row.TotalAmount = a.amount
		}
		rows = append(rows, row)
	}
	return rows
}

// Unpaid is the outstanding balance: milk amount minus payments over the
// same period. Not clamped; a negative result means the customer was
// overpaid and is preserved as-is.
func Unpaid(totalMilkAmount, totalPaidAmount decimal.Decimal) decimal.Decimal {
	return totalMilkAmount.Sub(totalPaidAmount)
}
