package interfaces

import "fmt"

// IngestionError reports an unreadable source or, in fail-fast mode, the
// first malformed record of the load. Line is zero when no single record is
// at fault.
type IngestionError struct {
	Source string
	Line   int
	Err    error
}

func (e *IngestionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("ingestion failed at %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("ingestion failed for %s: %v", e.Source, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// ConnectionError reports an unreachable sink. The whole persist phase is
// skipped when it occurs; results already computed in memory are still
// reported.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("sink unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
