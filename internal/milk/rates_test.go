package milk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ateet0254/mukesh-dairy-api/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func testSlabs(t *testing.T) []*models.RateSlab {
	t.Helper()
	return []*models.RateSlab{
		{
			MilkType: models.MilkTypeCow,
			FatMin:   dec(t, "3.0"), FatMax: dec(t, "4.0"),
			SnfMin: dec(t, "8.0"), SnfMax: dec(t, "9.0"),
			Rate: dec(t, "32.50"),
		},
		{
			MilkType: models.MilkTypeBuffalo,
			FatMin:   dec(t, "6.0"), FatMax: dec(t, "8.0"),
			SnfMin: dec(t, "9.0"), SnfMax: dec(t, "10.0"),
			Rate: dec(t, "48.00"),
		},
	}
}

func TestResolveRateMatchesBand(t *testing.T) {
	rate, ok := ResolveRate(testSlabs(t), models.MilkTypeCow, decPtr(t, "3.5"), decPtr(t, "8.5"))
	require.True(t, ok)
	require.True(t, rate.Equal(dec(t, "32.50")))
}

func TestResolveRateBoundsAreInclusive(t *testing.T) {
	slabs := testSlabs(t)

	rate, ok := ResolveRate(slabs, models.MilkTypeCow, decPtr(t, "3.0"), decPtr(t, "8.0"))
	require.True(t, ok)
	require.True(t, rate.Equal(dec(t, "32.50")))

	rate, ok = ResolveRate(slabs, models.MilkTypeCow, decPtr(t, "4.0"), decPtr(t, "9.0"))
	require.True(t, ok)
	require.True(t, rate.Equal(dec(t, "32.50")))
}

func TestResolveRateMissOutsideBand(t *testing.T) {
	// fat=4.5, snf=8.5 falls outside every configured cow band
	_, ok := ResolveRate(testSlabs(t), models.MilkTypeCow, decPtr(t, "4.5"), decPtr(t, "8.5"))
	require.False(t, ok)
}

func TestResolveRateMissUnknownMilkType(t *testing.T) {
	_, ok := ResolveRate(testSlabs(t), models.MilkTypeMix, decPtr(t, "3.5"), decPtr(t, "8.5"))
	require.False(t, ok)
}

func TestResolveRateRequiresFatAndSnf(t *testing.T) {
	slabs := testSlabs(t)

	_, ok := ResolveRate(slabs, models.MilkTypeCow, nil, decPtr(t, "8.5"))
	require.False(t, ok)

	_, ok = ResolveRate(slabs, models.MilkTypeCow, decPtr(t, "3.5"), nil)
	require.False(t, ok)

	_, ok = ResolveRate(slabs, models.MilkTypeCow, nil, nil)
	require.False(t, ok)
}
