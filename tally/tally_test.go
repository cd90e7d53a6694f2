package tally

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_RecordAndLeading(t *testing.T) {
	t.Parallel()

	tl := New()

	u := tl.Record("42")
	assert.Equal(t, Entry{Canonical: "42", Votes: 1}, u.Best)
	assert.Equal(t, Entry{}, u.RunnerUp)
	assert.Equal(t, 1, u.Margin())

	tl.Record("42")
	u = tl.Record("41")
	assert.Equal(t, Entry{Canonical: "42", Votes: 2}, u.Best)
	assert.Equal(t, Entry{Canonical: "41", Votes: 1}, u.RunnerUp)
	assert.Equal(t, 1, u.Margin())

	best, runnerUp := tl.Leading()
	assert.Equal(t, "42", best.Canonical)
	assert.Equal(t, "41", runnerUp.Canonical)
}

func TestTally_AheadBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ballots []string
		k       int
		won     bool
	}{
		{"single answer reaches k", []string{"42", "42", "42"}, 3, true},
		{"single answer below k", []string{"42", "42"}, 3, false},
		{"lead below k", []string{"B", "B", "B", "A", "A"}, 3, false},
		{"lead meets k", []string{"B", "B", "B", "B", "A"}, 3, true},
		{"top tie never wins with k=1", []string{"A", "B", "A", "B"}, 1, false},
		{"three-way with clear leader", []string{"C", "A", "C", "B", "C"}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := New()
			var u Update
			for _, b := range tt.ballots {
				u = tl.Record(b)
			}
			assert.Equal(t, tt.won, u.AheadBy(tt.k))
		})
	}
}

func TestTally_EmptyNeverWins(t *testing.T) {
	t.Parallel()

	tl := New()
	u := tl.RecordRedFlag()
	assert.False(t, u.AheadBy(1), "red flags alone must never win")
	assert.Equal(t, 1, u.TotalAttempts)
	assert.Equal(t, 1, u.TotalRedFlags)
}

func TestTally_TopTieBreaksLexicographically(t *testing.T) {
	t.Parallel()

	tl := New()
	tl.Record("beta")
	u := tl.Record("alpha")
	assert.Equal(t, "alpha", u.Best.Canonical)
	assert.Equal(t, u.Best.Votes, u.RunnerUp.Votes)
	assert.Zero(t, u.Margin())
}

func TestTally_ConcurrentRecords(t *testing.T) {
	t.Parallel()

	const (
		workers = 8
		perW    = 50
	)

	tl := New()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				if i%5 == 0 {
					tl.RecordRedFlag()
				} else {
					tl.Record("answer")
				}
			}
		}(w)
	}
	wg.Wait()

	best, _ := tl.Leading()
	u := tl.Record("answer")
	require.Equal(t, workers*perW+1, u.TotalAttempts)
	assert.Equal(t, workers*perW/5, u.TotalRedFlags)
	assert.Equal(t, best.Votes+1, u.Best.Votes)
	assert.Equal(t, u.TotalAttempts-u.TotalRedFlags, u.Best.Votes)
}
