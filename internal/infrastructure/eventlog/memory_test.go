package eventlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/service-discount/internal/interfaces"
)

func TestMemorySinkKeepsOrder(t *testing.T) {
	sink := &MemorySink{}

	sink.Record(interfaces.LevelInfo, "first")
	sink.Record(interfaces.LevelError, "second")
	sink.Record(interfaces.LevelInfo, "third")

	events := sink.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "first", events[0].Message)
	assert.Equal(t, "second", events[1].Message)
	assert.False(t, events[1].At.IsZero())

	assert.Equal(t, []string{"first", "third"}, sink.Messages(interfaces.LevelInfo))
	assert.Equal(t, []string{"second"}, sink.Messages(interfaces.LevelError))
}

func TestMemorySinkEventsReturnsCopy(t *testing.T) {
	sink := &MemorySink{}
	sink.Record(interfaces.LevelInfo, "only")

	events := sink.Events()
	events[0].Message = "tampered"

	assert.Equal(t, "only", sink.Events()[0].Message)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", interfaces.LevelDebug.String())
	assert.Equal(t, "INFO", interfaces.LevelInfo.String())
	assert.Equal(t, "ERROR", interfaces.LevelError.String())
}
