package interfaces

import (
	"github.com/Victor-armando18/service-discount/internal/domain/model"
)

// OrderSource is the contract for loading validated orders from a raw
// tabular source (disk, network, etc.).
type OrderSource interface {
	Load(sourceID string) ([]model.Order, error)
}

// ResultSink is the contract for persisting enriched orders. Each order is
// persisted independently; one failure must not block the rest.
type ResultSink interface {
	Persist(orders []model.Order) (PersistResult, error)
}

// PersistResult reports the outcome of one persist phase.
type PersistResult struct {
	SuccessCount int
	Failures     []PersistFailure
}

// PersistFailure is a per-record sink failure.
type PersistFailure struct {
	Order model.Order
	Err   error
}

// EventSink receives observational events from the pipeline. Implementations
// must not panic; recording is best-effort and append-only.
type EventSink interface {
	Record(level Level, message string)
}

// Level is the severity of a pipeline event.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}
