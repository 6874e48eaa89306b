package rubik

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherAppliesInOrder(t *testing.T) {
	c := New()
	d := NewDispatcher(c)
	defer d.Close()

	var mu sync.Mutex
	var observed []Move
	c.Subscribe(func(e Event) {
		if e.Kind == EventDidApply {
			mu.Lock()
			observed = append(observed, e.Move)
			mu.Unlock()
		}
	})

	var movingAtCompletion bool
	applied, err := d.Submit(TPerm, time.Millisecond, func() {
		movingAtCompletion = c.Moving()
	})
	require.NoError(t, err)

	var got []Move
	for m := range applied {
		got = append(got, m)
	}

	assert.Equal(t, TPerm, got)
	assert.True(t, movingAtCompletion, "moving stays set until the completion callback ran")
	assert.False(t, c.Moving())

	mu.Lock()
	assert.Equal(t, TPerm, observed)
	mu.Unlock()

	expected := New()
	require.NoError(t, expected.Apply(TPerm...))
	assert.True(t, c.SameState(expected))
}

func TestDispatcherRunsBatchesSequentially(t *testing.T) {
	c := New()
	d := NewDispatcher(c)

	scramble := NewSeededScrambler(17).Scramble(12)
	first, err := d.Submit(scramble, 0, nil)
	require.NoError(t, err)
	second, err := d.Submit(Invert(scramble), 0, nil)
	require.NoError(t, err)

	d.Close()

	assert.Len(t, drain(first), 12)
	assert.Len(t, drain(second), 12)
	assert.True(t, c.IsSolved())
	assert.Empty(t, c.LastPerformedMoves())
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := NewDispatcher(New())
	d.Close()
	d.Close()

	_, err := d.Submit([]Move{R}, 0, nil)
	assert.True(t, errors.Is(err, ErrDispatcherClosed))
}

func TestDispatcherRejectsInvalidMoves(t *testing.T) {
	c := New()
	d := NewDispatcher(c)
	defer d.Close()

	_, err := d.Submit([]Move{R, {Face: FaceTop, Magnitude: 0}}, 0, nil)
	assert.True(t, errors.Is(err, ErrInvalidMagnitude))
	assert.True(t, c.IsSolved())
}

func TestDispatcherEmptyBatch(t *testing.T) {
	c := New()
	d := NewDispatcher(c, WithBacklog(1))
	defer d.Close()

	done := make(chan struct{})
	applied, err := d.Submit(nil, time.Second, func() { close(done) })
	require.NoError(t, err)
	assert.Empty(t, drain(applied))
	<-done
	assert.True(t, c.IsSolved())
}

func TestDispatcherSubmitFromCompletion(t *testing.T) {
	c := New()
	d := NewDispatcher(c, WithBacklog(1))

	secondQueued := make(chan struct{})
	chained := make(chan (<-chan Move), 1)
	_, err := d.Submit([]Move{R}, 0, func() {
		<-secondQueued
		applied, err := d.Submit([]Move{U}, 0, nil)
		if err != nil {
			close(chained)
			return
		}
		chained <- applied
	})
	require.NoError(t, err)

	second, err := d.Submit([]Move{F}, 0, nil)
	require.NoError(t, err)
	close(secondQueued)

	var third <-chan Move
	select {
	case ch, ok := <-chained:
		require.True(t, ok, "chained submit failed")
		third = ch
	case <-time.After(2 * time.Second):
		t.Fatal("submit from the completion callback blocked")
	}

	assert.Equal(t, []Move{F}, drain(second))
	assert.Equal(t, []Move{U}, drain(third))

	closed := make(chan struct{})
	go func() {
		d.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("close blocked")
	}

	expected := New()
	require.NoError(t, expected.Apply(R, F, U))
	assert.True(t, c.SameState(expected))
}

func TestDispatcherLogsRejectedMove(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	d := NewDispatcher(c, WithDispatchLogger(log.New(&buf)))
	defer d.Close()

	b := batch{
		moves:   []Move{R, {Face: Face(9), Magnitude: Clockwise}, U},
		applied: make(chan Move, 3),
	}
	d.runBatch(b)

	assert.Equal(t, []Move{R, U}, drain(b.applied))
	assert.Contains(t, buf.String(), "move rejected")
	assert.False(t, c.Moving())
}

func drain(ch <-chan Move) []Move {
	var moves []Move
	for m := range ch {
		moves = append(moves, m)
	}
	return moves
}
