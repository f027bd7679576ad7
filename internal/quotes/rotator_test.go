package quotes

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lines = []string{"one", "two", "three", "four"}

type harness struct {
	r       *Rotator
	clk     *clockwork.FakeClock
	changes chan Change
	cancel  context.CancelFunc
	done    chan error
}

func start(t *testing.T) *harness {
	t.Helper()
	h := &harness{clk: clockwork.NewFakeClock(), changes: make(chan Change, 16), done: make(chan error, 1)}

	r, err := NewRotator(lines, WithClock(h.clk), OnChange(func(c Change) { h.changes <- c }))
	require.NoError(t, err)
	h.r = r

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- r.Run(ctx) }()
	waitForTicker(t, h.clk, 1)
	t.Cleanup(func() { h.stop(t) })
	return h
}

func waitForTicker(t *testing.T, clk *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, clk.BlockUntilContext(ctx, n), "waiting for %d active tickers", n)
}

func (h *harness) stop(t *testing.T) {
	h.cancel()
	select {
	case err := <-h.done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
	}
}

func (h *harness) next(t *testing.T) Change {
	t.Helper()
	select {
	case c := <-h.changes:
		return c
	case <-time.After(time.Second):
		t.Fatal("rotator did not advance")
		return Change{}
	}
}

func TestRotator_CyclesAllBeforeRepeating(t *testing.T) {
	h := start(t)
	assert.Equal(t, Quote{Index: 0, Text: "one"}, h.r.Current())

	var seen []string
	for i := 0; i < len(lines)*2; i++ {
		h.clk.Advance(Interval)
		c := h.next(t)
		assert.Equal(t, (c.From.Index+1)%len(lines), c.To.Index)
		seen = append(seen, c.To.Text)
	}
	assert.Equal(t, []string{"two", "three", "four", "one", "two", "three", "four", "one"}, seen)
}

func TestRotator_AdvancesOncePerInterval(t *testing.T) {
	h := start(t)

	h.clk.Advance(Interval - time.Millisecond)
	assert.Equal(t, 0, h.r.Current().Index)
	assert.Empty(t, h.changes)

	h.clk.Advance(time.Millisecond)
	assert.Equal(t, 1, h.next(t).To.Index)
	assert.Empty(t, h.changes)
}

func TestRotator_StopsAfterUnmount(t *testing.T) {
	h := start(t)
	h.clk.Advance(Interval)
	h.next(t)

	h.cancel()
	require.NoError(t, <-h.done)
	h.done <- nil // keep cleanup from waiting

	waitForTicker(t, h.clk, 0)

	h.clk.Advance(10 * Interval)
	assert.Equal(t, 1, h.r.Current().Index)
	assert.Empty(t, h.changes)
}

func TestRotator_RestartBeginsAtFirstQuote(t *testing.T) {
	clk := clockwork.NewFakeClock()
	changes := make(chan Change, 4)
	r, err := NewRotator(lines, WithClock(clk), OnChange(func(c Change) { changes <- c }))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	waitForTicker(t, clk, 1)
	clk.Advance(Interval)
	<-changes
	clk.Advance(Interval)
	<-changes
	cancel()
	<-done
	require.Equal(t, 2, r.Current().Index)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	go func() { done <- r.Run(ctx) }()
	waitForTicker(t, clk, 1)
	assert.Equal(t, 0, r.Current().Index)
}

func TestNewRotator_Empty(t *testing.T) {
	_, err := NewRotator(nil)
	assert.ErrorIs(t, err, ErrNoQuotes)
}

func TestNewRotator_Defaults(t *testing.T) {
	r, err := NewRotator(lines)
	require.NoError(t, err)
	assert.Equal(t, Interval, r.interval)
	assert.Equal(t, 4, r.Len())
}
