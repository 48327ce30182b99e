package telemetry_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/db47h/increparse/internal/telemetry"
)

func TestNopLoggerNeverPanics(t *testing.T) {
	l := telemetry.Nop()
	require.NotPanics(t, func() {
		l.Timing("lex", time.Millisecond)
		l.Error("grammar load warning", nil)
		l.WithSession(uuid.New()).Timing("accepts", 0)
	})
}
