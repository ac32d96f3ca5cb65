package rules

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Victor-armando18/service-discount/internal/domain/model"
)

// Score is one rule's output for an order, tagged with the rule that
// produced it.
type Score struct {
	RuleID  string
	Percent decimal.Decimal
}

var two = decimal.NewFromInt(2)

// Aggregate scores the order against every rule in the table and combines
// the two highest percentages into the final discount: their arithmetic
// mean. Zeros and duplicates are retained, so a lone firing rule is halved
// by the zero in second place. The returned order is a copy carrying the
// final discount; the full per-rule breakdown is returned alongside it for
// observability.
//
// Aggregation is a pure function of the order's non-discount fields:
// re-running it on an already enriched order yields the same discount.
func Aggregate(o model.Order, table []Rule) (model.Order, []Score) {
	scores := make([]Score, 0, len(table))
	for _, r := range table {
		scores = append(scores, Score{RuleID: r.ID, Percent: r.Score(o)})
	}

	percents := make([]decimal.Decimal, len(scores))
	for i, s := range scores {
		percents[i] = s.Percent
	}
	sort.Slice(percents, func(i, j int) bool {
		return percents[i].GreaterThan(percents[j])
	})

	top1, top2 := decimal.Zero, decimal.Zero
	if len(percents) > 0 {
		top1 = percents[0]
	}
	if len(percents) > 1 {
		top2 = percents[1]
	}
	final := top1.Add(top2).Div(two)

	return o.WithDiscount(final), scores
}
