// Package milk holds the valuation and aggregation core of the service:
// rate resolution, entry amount computation and the daily/period summaries.
// Everything here is a pure function over records the repositories fetch;
// nothing reads the clock or touches storage.
package milk

import (
	"github.com/shopspring/decimal"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

// ResolveRate looks up the price per liter for a milk sample against the
// configured rate chart. Both fat and snf must be present for a lookup to
// succeed; absence of either means "no automatic rate", not zero. A slab
// matches when the milk type is equal and fat/snf both fall inside the
// inclusive [min, max] bounds; the first matching slab wins.
//
// The second return value is false on a lookup miss. Callers must not
// substitute a default rate; they require a manual rate instead.
func ResolveRate(slabs []*models.RateSlab, milkType string, fat, snf *decimal.Decimal) (decimal.Decimal, bool) {
	if fat == nil || snf == nil {
		return decimal.Decimal{}, false
	}
	for _, slab := range slabs {
		if slab.MilkType != milkType {
			continue
		}
		if fat.GreaterThanOrEqual(slab.FatMin) && fat.LessThanOrEqual(slab.FatMax) &&
			snf.GreaterThanOrEqual(slab.SnfMin) && snf.LessThanOrEqual(slab.SnfMax) {
			return slab.Rate, true
		}
	}
	return decimal.Decimal{}, false
}

// ValidMilkType reports whether t is one of the fixed milk types
func ValidMilkType(t string) bool {
	switch t {
	case models.MilkTypeCow, models.MilkTypeBuffalo, models.MilkTypeMix:
		return true
	}
	return false
}

// ValidShift reports whether s is MORNING or EVENING
func ValidShift(s string) bool {
	return s == models.ShiftMorning || s == models.ShiftEvening
}
