package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/service-discount/internal/domain/model"
)

// fixedTable builds a table of stub rules returning the given percents, so
// the combination policy can be tested apart from the real rules.
func fixedTable(percents ...int64) []Rule {
	table := make([]Rule, len(percents))
	for i, p := range percents {
		value := decimal.NewFromInt(p)
		table[i] = Rule{
			ID:    "stub",
			Score: func(model.Order) decimal.Decimal { return value },
		}
	}
	return table
}

func TestAggregateMeansTopTwo(t *testing.T) {
	enriched, scores := Aggregate(model.Order{}, fixedTable(50, 10, 7, 5, 5, 0))

	assert.Equal(t, "30", enriched.Discount.String())
	require.Len(t, scores, 6)
}

func TestAggregateHalvesLoneFiringRule(t *testing.T) {
	// The second-highest value is zero and still divides the sum by two.
	enriched, _ := Aggregate(model.Order{}, fixedTable(0, 0, 10, 0, 0, 0))

	assert.Equal(t, "5", enriched.Discount.String())
}

func TestAggregateAllZeros(t *testing.T) {
	enriched, _ := Aggregate(model.Order{}, fixedTable(0, 0, 0, 0, 0, 0))

	assert.True(t, enriched.Discount.IsZero())
}

func TestAggregateDuplicatesRetained(t *testing.T) {
	enriched, _ := Aggregate(model.Order{}, fixedTable(20, 20, 5))

	assert.Equal(t, "20", enriched.Discount.String())
}

func TestAggregateEndToEnd(t *testing.T) {
	// Cheese wheel bought on the special date, two days before expiry:
	// expiry=28, product=10, special-date=50, quantity=5, channel=0,
	// payment=0 -> top two are 50 and 28 -> 39.
	order := model.Order{
		Timestamp:     "2024-03-23T10:00:00",
		ProductName:   "Cheese Wheel",
		ExpiryDate:    "2024-03-25",
		Quantity:      8,
		UnitPrice:     decimal.RequireFromString("10.00"),
		Channel:       "store",
		PaymentMethod: "cash",
	}

	enriched, scores := Aggregate(order, Table())

	assert.Equal(t, "39", enriched.Discount.String())
	assert.Equal(t, "80.00", enriched.OriginalPrice().StringFixed(2))
	assert.Equal(t, "48.80", enriched.FinalPrice().StringFixed(2))

	byID := map[string]string{}
	for _, s := range scores {
		byID[s.RuleID] = s.Percent.String()
	}
	assert.Equal(t, map[string]string{
		"expiry":       "28",
		"product":      "10",
		"special-date": "50",
		"quantity":     "5",
		"channel":      "0",
		"payment":      "0",
	}, byID)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	order := model.Order{
		Timestamp:   "2024-03-23T10:00:00",
		ProductName: "Cheese Wheel",
		ExpiryDate:  "2024-03-25",
		Quantity:    8,
		UnitPrice:   decimal.RequireFromString("10.00"),
	}

	_, _ = Aggregate(order, Table())

	assert.True(t, order.Discount.IsZero())
}

func TestAggregateIsIdempotent(t *testing.T) {
	// The discount field never feeds back into the rules, so aggregating an
	// already enriched order yields the same discount again.
	order := model.Order{
		Timestamp:     "2024-03-23T10:00:00",
		ProductName:   "Cheese Wheel",
		ExpiryDate:    "2024-03-25",
		Quantity:      8,
		UnitPrice:     decimal.RequireFromString("10.00"),
		Channel:       "store",
		PaymentMethod: "cash",
	}

	once, _ := Aggregate(order, Table())
	twice, _ := Aggregate(once, Table())

	assert.True(t, once.Discount.Equal(twice.Discount))
}

func TestAggregateFractionalMean(t *testing.T) {
	enriched, _ := Aggregate(model.Order{}, fixedTable(10, 5))

	assert.Equal(t, "7.5", enriched.Discount.String())
}
