package main

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/Victor-armando18/service-discount/internal/domain/rules"
	"github.com/Victor-armando18/service-discount/internal/infrastructure/csvsource"
	"github.com/Victor-armando18/service-discount/internal/infrastructure/eventlog"
	"github.com/Victor-armando18/service-discount/internal/infrastructure/sqlitesink"
	"github.com/Victor-armando18/service-discount/internal/infrastructure/yamlmanifest"
	"github.com/Victor-armando18/service-discount/internal/interfaces"
	"github.com/Victor-armando18/service-discount/internal/usecase"
)

var log = logging.MustGetLogger("log")

func main() {
	config, err := InitConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := eventlog.Init(config.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	log.Debugf("Config: %+v", config)

	table, err := loadRuleTable(config.ManifestPath)
	if err != nil {
		log.Fatalf("Failed to load rule manifest: %s", err)
	}

	events := eventlog.LogSink{}
	source := &csvsource.Loader{SkipMalformed: config.SkipMalformed, Events: events}

	// An unreachable sink is not fatal: the run still computes and reports
	// results, only the persist phase is skipped.
	var sink interfaces.ResultSink
	dbSink, err := sqlitesink.Open(config.DBPath)
	if err != nil {
		events.Record(interfaces.LevelError, fmt.Sprintf("%v", err))
	} else {
		sink = dbSink
	}

	pipeline := &usecase.Pipeline{
		Source: source,
		Sink:   sink,
		Events: events,
		Table:  table,
	}
	summary := pipeline.Run(config.SourcePath)

	log.Infof("Run %s finished: %d loaded, %d processed, %d persisted, %d failed",
		summary.RunID, summary.Loaded, summary.Processed, summary.Persisted, summary.Failed)
}

// loadRuleTable resolves the optional rule manifest. Without one, the full
// built-in table runs in its default order.
func loadRuleTable(manifestPath string) ([]rules.Rule, error) {
	if manifestPath == "" {
		return rules.Table(), nil
	}

	manifest, err := yamlmanifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	table, err := rules.Select(manifest.Rules)
	if err != nil {
		return nil, err
	}
	log.Infof("Using rule manifest %s (%s): %d rules", manifest.Version, manifest.Description, len(table))
	return table, nil
}
