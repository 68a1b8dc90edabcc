package engine_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimedrop/card-price-tracker/internal/engine"
)

func TestScheduler_RegistersJobs(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := engine.NewScheduler(f.engine, 15*time.Minute, 24*time.Hour, log)
	require.NoError(t, err)

	// One entry for alert checks, one for the cache sweep.
	assert.Len(t, s.Entries(), 2)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := engine.NewScheduler(f.engine, time.Hour, time.Hour, log)
	require.NoError(t, err)

	s.Start()

	done := s.Stop()
	select {
	case <-done.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}

