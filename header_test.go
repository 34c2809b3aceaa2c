package dynarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGrowCapacity(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{16, 16},
		{17, 32},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
		{math.MaxInt/2 + 1, math.MaxInt/2 + 1},
		{math.MaxInt/2 + 2, math.MaxInt},
		{math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		result := growCapacity(tt.input)
		if result != tt.expected {
			t.Errorf("growCapacity(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestHeaderFinalizeSkipsEmptyRanges(t *testing.T) {
	calls := 0
	h := &header{destructor: func([]byte) { calls++ }}

	h.finalize(nil)
	h.finalize([]byte{})
	if calls != 0 {
		t.Errorf("finalize on empty range called destructor %d times", calls)
	}

	h.finalize([]byte{1})
	if calls != 1 {
		t.Errorf("finalize called destructor %d times, want 1", calls)
	}

	h.destructor = nil
	h.finalize([]byte{1}) // must not panic
}

func TestArrayLogsAllocationEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var a Array
	a.Alloc(0, nil, WithLogger(zap.New(core)))
	a.Append(3)
	a.ShrinkToFit()
	a.Free()

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	require.Equal(t, []string{
		"dynarray alloc",
		"dynarray grow",
		"dynarray shrink",
		"dynarray free",
	}, messages)

	grow := logs.FilterMessage("dynarray grow").All()[0].ContextMap()
	require.EqualValues(t, 0, grow["old capacity"])
	require.EqualValues(t, 4, grow["new capacity"])
}
