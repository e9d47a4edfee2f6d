package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevelAndFormat(t *testing.T) {
	log := New("debug", "json")
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", log.Formatter)
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	log := New("loud", "text")
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level for unknown input, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("Expected text formatter, got %T", log.Formatter)
	}
}
