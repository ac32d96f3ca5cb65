package sqlitesink

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Victor-armando18/service-discount/internal/domain/model"
	"github.com/Victor-armando18/service-discount/internal/interfaces"
)

// EnrichedOrder is the persisted row: the source order plus the computed
// discount and prices. Monetary and percent columns are stored as
// fixed-point strings with two fractional digits.
type EnrichedOrder struct {
	ID              string `gorm:"primaryKey"`
	TransactionDate string `gorm:"index"`
	ExpiryDate      string
	ProductName     string
	Quantity        int
	UnitPrice       string
	Channel         string
	PaymentMethod   string
	Discount        string
	OriginalPrice   string
	FinalPrice      string
	CreatedAt       time.Time
}

func (EnrichedOrder) TableName() string { return "enriched_orders" }

// Sink persists enriched orders to a SQLite database through GORM.
type Sink struct {
	db *gorm.DB
}

// Open connects to the database at path and ensures the results table
// exists.
func Open(path string) (*Sink, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, &interfaces.ConnectionError{Err: err}
	}
	if err := db.AutoMigrate(&EnrichedOrder{}); err != nil {
		return nil, &interfaces.ConnectionError{Err: err}
	}
	return &Sink{db: db}, nil
}

// Persist implements interfaces.ResultSink: one insert per order, failures
// isolated per record.
func (s *Sink) Persist(orders []model.Order) (interfaces.PersistResult, error) {
	var result interfaces.PersistResult
	for _, order := range orders {
		row, err := rowFromOrder(order)
		if err == nil {
			err = s.db.Create(&row).Error
		}
		if err != nil {
			result.Failures = append(result.Failures, interfaces.PersistFailure{Order: order, Err: err})
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func rowFromOrder(order model.Order) (EnrichedOrder, error) {
	txDate, err := order.TransactionDate()
	if err != nil {
		return EnrichedOrder{}, fmt.Errorf("transaction date: %w", err)
	}
	return EnrichedOrder{
		ID:              uuid.NewString(),
		TransactionDate: txDate.Format("2006-01-02"),
		ExpiryDate:      order.ExpiryDate,
		ProductName:     order.ProductName,
		Quantity:        order.Quantity,
		UnitPrice:       order.UnitPrice.StringFixed(2),
		Channel:         order.Channel,
		PaymentMethod:   order.PaymentMethod,
		Discount:        order.Discount.StringFixed(2),
		OriginalPrice:   order.OriginalPrice().StringFixed(2),
		FinalPrice:      order.FinalPrice().StringFixed(2),
	}, nil
}
