package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/switchride/internal/config"
)

func TestNewDefaults(t *testing.T) {
	log := New(config.LoggerConfig{Level: "bogus", Format: "text"})
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s, want info", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter = %T, want text", log.Formatter)
	}
}

func TestNewJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switchride.log")
	log := New(config.LoggerConfig{Level: "debug", Format: "json", File: path})

	log.WithFields(logrus.Fields{"slide": 2}).Debug("slide changed")
	log.WithError(errors.New("boom")).Error("failed")
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"slide changed"`) || !strings.Contains(out, `"slide":2`) {
		t.Fatalf("log missing debug entry: %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("log missing error field: %s", out)
	}
}

func TestCloseWithoutFile(t *testing.T) {
	if err := NewDiscard().Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
