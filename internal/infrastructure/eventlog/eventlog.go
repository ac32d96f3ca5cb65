package eventlog

import (
	"os"

	"github.com/op/go-logging"

	"github.com/Victor-armando18/service-discount/internal/interfaces"
)

var log = logging.MustGetLogger("pipeline")

// Init receives the log level to be set in go-logging as a string, parses
// it and configures a timestamped stdout backend. If the level string is
// not valid an error is returned.
func Init(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

// LogSink forwards pipeline events to the configured go-logging backend.
type LogSink struct{}

// Record implements interfaces.EventSink. It never panics: go-logging
// swallows backend write errors.
func (LogSink) Record(level interfaces.Level, message string) {
	switch level {
	case interfaces.LevelError:
		log.Error(message)
	case interfaces.LevelDebug:
		log.Debug(message)
	default:
		log.Info(message)
	}
}
