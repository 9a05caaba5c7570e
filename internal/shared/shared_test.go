package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes to the given writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)

		logger.Error("something broke")
		if buf.Len() == 0 {
			t.Error("expected log output in the buffer")
		}
	})

	t.Run("nil writer defaults to stderr", func(t *testing.T) {
		if NewLogger(nil) == nil {
			t.Error("expected a logger")
		}
	})

	t.Run("WithLogger attaches fields to every entry", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := WithLogger(NewLogger(buf), "component", "bot")

		logger.Error("something broke")
		if !strings.Contains(buf.String(), "component=bot") {
			t.Errorf("expected component field in output, got %q", buf.String())
		}
	})

	t.Run("SetLogLevel changes the level", func(t *testing.T) {
		logger := NewLogger(&bytes.Buffer{})

		SetLogLevel(logger, log.DebugLevel)
		if logger.GetLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", logger.GetLevel())
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bot.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create file logger: %v", err)
	}
	logger.Error("something broke")

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected log file to exist: %v", err)
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()

	if a == "" || b == "" {
		t.Error("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected unique IDs")
	}
}

func TestMetrics(t *testing.T) {
	t.Run("counters register and increment", func(t *testing.T) {
		m := NewMetrics()

		m.IncCommand("search")
		m.IncCommand("search")
		m.IncCatalogRequest()
		m.ObserveCatalogDuration(50 * time.Millisecond)
		m.IncPagerSession()
		m.IncReply()
		m.IncError("catalog")

		if got := testutil.ToFloat64(m.CommandsTotal.WithLabelValues("search")); got != 2 {
			t.Errorf("expected 2 search commands, got %v", got)
		}
		if got := testutil.ToFloat64(m.CatalogRequests); got != 1 {
			t.Errorf("expected 1 catalog request, got %v", got)
		}
		if got := testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("catalog")); got != 1 {
			t.Errorf("expected 1 catalog error, got %v", got)
		}
	})

	t.Run("nil metrics are safe", func(t *testing.T) {
		var m *Metrics

		m.IncCommand("search")
		m.IncCatalogRequest()
		m.ObserveCatalogDuration(time.Millisecond)
		m.IncPagerSession()
		m.IncReply()
		m.IncError("catalog")
	})
}
