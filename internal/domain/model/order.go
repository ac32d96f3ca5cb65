package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the calendar-date portion of source timestamps.
const dateLayout = "2006-01-02"

// Order is one transaction record. Orders are immutable values: the
// discount is set exactly once through WithDiscount, which returns a copy
// instead of mutating in place.
type Order struct {
	Timestamp     string
	ProductName   string
	ExpiryDate    string
	Quantity      int
	UnitPrice     decimal.Decimal
	Channel       string
	PaymentMethod string
	Discount      decimal.Decimal
}

// TransactionDate parses the calendar date from the first 10 characters of
// the raw timestamp. The time-of-day portion never participates in any
// rule, only the date.
func (o Order) TransactionDate() (time.Time, error) {
	ts := o.Timestamp
	if len(ts) > len(dateLayout) {
		ts = ts[:len(dateLayout)]
	}
	return time.Parse(dateLayout, ts)
}

// Expiry parses the expiry date, which carries no time component.
func (o Order) Expiry() (time.Time, error) {
	return time.Parse(dateLayout, o.ExpiryDate)
}

// OriginalPrice is quantity times unit price, computed in exact decimal
// arithmetic.
func (o Order) OriginalPrice() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// FinalPrice applies the discount percentage to the original price:
// originalPrice * (1 - discount/100).
func (o Order) FinalPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(o.Discount.Div(decimal.NewFromInt(100)))
	return o.OriginalPrice().Mul(factor)
}

// WithDiscount returns a copy of the order carrying the final discount.
func (o Order) WithDiscount(percent decimal.Decimal) Order {
	o.Discount = percent
	return o
}
