package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddClampsToUnitRange(t *testing.T) {
	a := NewAccumulator(DefaultDecayRate)

	a.Add(0.4)
	assert.InDelta(t, 0.4, a.Level(), 1e-12)

	a.Add(2.0)
	assert.Equal(t, 1.0, a.Level())

	a.Add(-5.0)
	assert.Equal(t, 0.0, a.Level())
}

func TestNegativeDeltasDrain(t *testing.T) {
	a := NewAccumulator(DefaultDecayRate)
	a.Add(0.6)
	a.Add(-0.2)
	assert.InDelta(t, 0.4, a.Level(), 1e-12)
}

func TestRunDecaysOverTime(t *testing.T) {
	a := NewAccumulator(2.0) // fast drain so the test stays short
	a.Add(1.0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.Run(ctx)

	time.Sleep(300 * time.Millisecond)
	assert.Less(t, a.Level(), 1.0)
	assert.GreaterOrEqual(t, a.Level(), 0.0)
}

func TestReset(t *testing.T) {
	a := NewAccumulator(DefaultDecayRate)
	a.Add(0.8)
	a.Reset()
	assert.Equal(t, 0.0, a.Level())
}
