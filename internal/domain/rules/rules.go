package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Victor-armando18/service-discount/internal/domain/model"
)

// Rule scores a discount percentage for a single order. Rules are pure and
// total: a well-formed order never produces an error, only a percentage.
// The ID tags rule outputs for observability.
type Rule struct {
	ID    string
	Score func(model.Order) decimal.Decimal
}

// Table returns the built-in rules in their default evaluation order.
func Table() []Rule {
	return []Rule{
		{ID: "expiry", Score: expiryScore},
		{ID: "product", Score: productScore},
		{ID: "special-date", Score: specialDateScore},
		{ID: "quantity", Score: quantityScore},
		{ID: "channel", Score: channelScore},
		{ID: "payment", Score: paymentScore},
	}
}

// Select resolves rule identifiers against the built-in table, keeping the
// requested order. Unknown identifiers are an error.
func Select(ids []string) ([]Rule, error) {
	table := Table()
	byID := make(map[string]Rule, len(table))
	for _, r := range table {
		byID[r.ID] = r
	}

	selected := make([]Rule, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", id)
		}
		selected = append(selected, r)
	}
	return selected, nil
}

// expiryScore grants one percent per day under 30 left before expiry:
// 1 to 29 days remaining scores 30-days. Orders already expired, expiring
// today or with 30 or more days left score nothing.
func expiryScore(o model.Order) decimal.Decimal {
	tx, err := o.TransactionDate()
	if err != nil {
		return decimal.Zero
	}
	exp, err := o.Expiry()
	if err != nil {
		return decimal.Zero
	}
	days := int(exp.Sub(tx).Hours() / 24)
	if days < 1 || days > 29 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(30 - days))
}

// productScore matches case-insensitive substrings of the product name.
// Cheese wins when both substrings are present.
func productScore(o model.Order) decimal.Decimal {
	name := strings.ToLower(o.ProductName)
	switch {
	case strings.Contains(name, "cheese"):
		return decimal.NewFromInt(10)
	case strings.Contains(name, "wine"):
		return decimal.NewFromInt(5)
	}
	return decimal.Zero
}

// specialDateScore fires on March 23rd transactions.
func specialDateScore(o model.Order) decimal.Decimal {
	tx, err := o.TransactionDate()
	if err != nil {
		return decimal.Zero
	}
	if tx.Month() == time.March && tx.Day() == 23 {
		return decimal.NewFromInt(50)
	}
	return decimal.Zero
}

// quantityScore tiers: 6-9 units score 5, 10-14 score 7, more than 15
// score 10. Exactly 15 falls between the last two tiers and scores
// nothing.
func quantityScore(o model.Order) decimal.Decimal {
	switch q := o.Quantity; {
	case q >= 6 && q <= 9:
		return decimal.NewFromInt(5)
	case q >= 10 && q <= 14:
		return decimal.NewFromInt(7)
	case q > 15:
		return decimal.NewFromInt(10)
	}
	return decimal.Zero
}

// channelScore applies to "app" orders only: the quantity is rounded up to
// the next multiple of five and each block of five is worth five percent.
// Not clamped, so large quantities can push the percentage past 100.
func channelScore(o model.Order) decimal.Decimal {
	if !strings.EqualFold(o.Channel, "app") {
		return decimal.Zero
	}
	rounded := ((o.Quantity + 4) / 5) * 5
	return decimal.NewFromInt(int64(rounded / 5 * 5))
}

// paymentScore fires on visa payments.
func paymentScore(o model.Order) decimal.Decimal {
	if strings.EqualFold(o.PaymentMethod, "visa") {
		return decimal.NewFromInt(5)
	}
	return decimal.Zero
}
