package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Victor-armando18/service-discount/internal/domain/model"
	"github.com/Victor-armando18/service-discount/internal/interfaces"
)

const fieldCount = 7

// Loader reads orders from a comma-delimited file. The first row is a
// header and is skipped; every record carries exactly seven fields:
// timestamp, product name, expiry date, quantity, unit price, channel,
// payment method.
//
// By default the load is fail-fast: the first malformed record aborts the
// whole read. With SkipMalformed set, bad records are reported through
// Events and the load continues.
type Loader struct {
	SkipMalformed bool
	Events        interfaces.EventSink
}

// Load implements interfaces.OrderSource.
func (l *Loader) Load(path string) ([]model.Order, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &interfaces.IngestionError{Source: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fieldCount
	reader.TrimLeadingSpace = true

	// Skip header. An empty file yields zero orders.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &interfaces.IngestionError{Source: path, Line: 1, Err: err}
	}

	var orders []model.Order
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err == nil {
			var order model.Order
			order, err = parseRecord(record)
			if err == nil {
				orders = append(orders, order)
				continue
			}
		}
		if !l.SkipMalformed {
			return nil, &interfaces.IngestionError{Source: path, Line: line, Err: err}
		}
		if l.Events != nil {
			l.Events.Record(interfaces.LevelError,
				fmt.Sprintf("skipping record %d of %s: %v", line, path, err))
		}
	}
	return orders, nil
}

func parseRecord(record []string) (model.Order, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return model.Order{}, fmt.Errorf("bad quantity %q: %w", record[3], err)
	}
	if quantity <= 0 {
		return model.Order{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	unitPrice, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return model.Order{}, fmt.Errorf("bad unit price %q: %w", record[4], err)
	}
	if unitPrice.IsNegative() {
		return model.Order{}, fmt.Errorf("unit price must not be negative, got %s", unitPrice)
	}

	order := model.Order{
		Timestamp:     strings.TrimSpace(record[0]),
		ProductName:   strings.TrimSpace(record[1]),
		ExpiryDate:    strings.TrimSpace(record[2]),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Channel:       strings.TrimSpace(record[5]),
		PaymentMethod: strings.TrimSpace(record[6]),
	}
	if _, err := order.TransactionDate(); err != nil {
		return model.Order{}, fmt.Errorf("bad timestamp %q: %w", record[0], err)
	}
	if _, err := order.Expiry(); err != nil {
		return model.Order{}, fmt.Errorf("bad expiry date %q: %w", record[2], err)
	}
	return order, nil
}
