package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContext(t *testing.T) {
	t.Run("returns no-op collector when none attached", func(t *testing.T) {
		collector := FromContext(context.Background())

		// Must be safe to use without panicking or producing output.
		timer := collector.Start("noop")
		timer.Child("child").End()
		timer.End()

		var buf bytes.Buffer
		collector.Report(&buf)
		assert.Equal(t, "", buf.String())
	})

	t.Run("round-trips an attached collector", func(t *testing.T) {
		collector := NewTimingCollector()
		ctx := WithCollector(context.Background(), collector)

		assert.Equal[Collector](t, collector, FromContext(ctx))
	})
}

func TestTimingCollector_Report(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("replay input_01.txt")
	parse := root.Child("parse")
	parse.End()
	apply := root.Child("apply")
	apply.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "replay input_01.txt: "))
	assert.True(t, strings.HasPrefix(lines[1], "├─ parse: "))
	assert.True(t, strings.HasPrefix(lines[2], "└─ apply: "))
}

func TestTimingCollector_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	NewTimingCollector().Report(&buf)
	assert.Equal(t, "", buf.String())
}
