package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/endotarter/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, msg: "Logged in", goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "endorsement of nation_2 rejected", goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "cache file is corrupt", goldenName: "handler_error"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "scanning dump", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		attrs      []slog.Attr
		msg        string
		goldenName string
	}{
		{
			name:       "single",
			attrs:      []slog.Attr{slog.String("nation", "nation_1")},
			msg:        "Endorsed",
			goldenName: "handler_attrs_single",
		},
		{
			name:       "group",
			attrs:      []slog.Attr{slog.Group("dump", slog.Int("scanned", 3), slog.Bool("stopped_early", true))},
			msg:        "Scanned dump",
			goldenName: "handler_attrs_group",
		},
		{
			name:       "nested group",
			attrs:      []slog.Attr{slog.Group("run", slog.Group("queue", slog.Int("remaining", 2)))},
			msg:        "Queue ready",
			goldenName: "handler_attrs_nested_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			h := logger.NewPrettyHandler(buf, nil).WithAttrs(tt.attrs)
			slog.New(h).Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil).WithGroup("cache")
	slog.New(h).Info("Saved", "endorsed", 4)

	assert.Equal(t, "Saved cache.endorsed=4\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}
