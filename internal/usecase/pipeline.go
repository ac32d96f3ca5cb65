package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Victor-armando18/service-discount/internal/domain/model"
	"github.com/Victor-armando18/service-discount/internal/domain/rules"
	"github.com/Victor-armando18/service-discount/internal/interfaces"
)

// Pipeline runs one batch: load, score, persist. It holds no business
// logic of its own; rule evaluation lives in the rules package and the
// collaborators are injected ports.
type Pipeline struct {
	Source interfaces.OrderSource
	Sink   interfaces.ResultSink
	Events interfaces.EventSink
	Table  []rules.Rule
}

// Summary reports the counts of one run.
type Summary struct {
	RunID     string
	Loaded    int
	Processed int
	Persisted int
	Failed    int
}

// Run processes the source end to end. Failures are reported through the
// event sink and never abort the run: a failed load yields zero orders,
// an unreachable sink skips the persist phase, and a per-record persist
// failure does not block the remaining orders.
func (p *Pipeline) Run(sourceID string) Summary {
	summary := Summary{RunID: uuid.NewString()}
	p.record(interfaces.LevelInfo, "run %s: loading orders from %s", summary.RunID, sourceID)

	orders, err := p.Source.Load(sourceID)
	if err != nil {
		p.record(interfaces.LevelError, "run %s: %v", summary.RunID, err)
		orders = nil
	}
	summary.Loaded = len(orders)
	p.record(interfaces.LevelInfo, "run %s: loaded %d orders", summary.RunID, summary.Loaded)

	table := p.Table
	if table == nil {
		table = rules.Table()
	}

	enriched := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		scored, breakdown := rules.Aggregate(order, table)
		p.record(interfaces.LevelDebug, "run %s: %q scored %s%% (%s)",
			summary.RunID, order.ProductName, scored.Discount, formatBreakdown(breakdown))
		enriched = append(enriched, scored)
	}
	summary.Processed = len(enriched)
	p.record(interfaces.LevelInfo, "run %s: processed %d orders", summary.RunID, summary.Processed)

	summary.Persisted, summary.Failed = p.persist(summary.RunID, enriched)

	p.record(interfaces.LevelInfo, "run %s: done, %d loaded, %d processed, %d persisted, %d failed",
		summary.RunID, summary.Loaded, summary.Processed, summary.Persisted, summary.Failed)
	return summary
}

func (p *Pipeline) persist(runID string, enriched []model.Order) (persisted, failed int) {
	if p.Sink == nil {
		p.record(interfaces.LevelError,
			"run %s: no sink available, %d computed results kept in memory only", runID, len(enriched))
		return 0, 0
	}

	result, err := p.Sink.Persist(enriched)
	if err != nil {
		p.record(interfaces.LevelError, "run %s: persist phase skipped: %v", runID, err)
		return 0, 0
	}

	for _, failure := range result.Failures {
		p.record(interfaces.LevelError, "run %s: could not persist order %q: %v",
			runID, failure.Order.ProductName, failure.Err)
	}
	p.record(interfaces.LevelInfo, "run %s: persisted %d of %d orders",
		runID, result.SuccessCount, len(enriched))
	return result.SuccessCount, len(result.Failures)
}

func (p *Pipeline) record(level interfaces.Level, format string, args ...any) {
	if p.Events == nil {
		return
	}
	p.Events.Record(level, fmt.Sprintf(format, args...))
}

func formatBreakdown(scores []rules.Score) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%s=%s", s.RuleID, s.Percent)
	}
	return strings.Join(parts, " ")
}
