// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package githubapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacerDisabled(t *testing.T) {
	p := NewPacer(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Wait(t.Context()))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond, "disabled pacer must not block")
}

func TestPacerSpacing(t *testing.T) {
	const interval = 30 * time.Millisecond
	p := NewPacer(interval)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(t.Context()))
	}
	// First call is free, the next two each wait out the interval.
	assert.GreaterOrEqual(t, time.Since(start), 2*interval)
}

func TestPacerCancelledContext(t *testing.T) {
	cancelled, cancel := context.WithCancel(t.Context())
	cancel()

	assert.Error(t, NewPacer(time.Hour).Wait(cancelled))
	assert.Error(t, NewPacer(0).Wait(cancelled), "disabled pacer still honors the context")
}
