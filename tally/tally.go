package tally

import "sync"

// Entry is one candidate answer and its vote count.
type Entry struct {
	Canonical string
	Votes     int
}

// Update is a consistent snapshot taken inside the record critical section.
// The win check must be evaluated against an Update, never against separately
// fetched counters.
type Update struct {
	Best          Entry
	RunnerUp      Entry
	TotalAttempts int
	TotalRedFlags int
}

// Margin is the lead of the best candidate over the runner-up. A top tie
// yields margin 0.
func (u Update) Margin() int {
	return u.Best.Votes - u.RunnerUp.Votes
}

// AheadBy reports whether the best candidate satisfies the win condition.
func (u Update) AheadBy(k int) bool {
	return u.Best.Votes > 0 && u.Margin() >= k
}

// Tally accumulates votes per canonical form for one decision. Safe for
// concurrent use; discarded after the verdict.
type Tally struct {
	mu            sync.Mutex
	votes         map[string]int
	totalAttempts int
	totalRedFlags int
}

// New creates an empty tally.
func New() *Tally {
	return &Tally{votes: make(map[string]int)}
}

// Record counts one accepted ballot and returns the post-update snapshot.
func (t *Tally) Record(canonical string) Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalAttempts++
	t.votes[canonical]++
	return t.snapshotLocked()
}

// RecordRedFlag counts one red-flagged ballot. It consumes budget but never
// contributes a vote.
func (t *Tally) RecordRedFlag() Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalAttempts++
	t.totalRedFlags++
	return t.snapshotLocked()
}

// Leading returns the current best candidate and runner-up.
func (t *Tally) Leading() (best, runnerUp Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	u := t.snapshotLocked()
	return u.Best, u.RunnerUp
}

func (t *Tally) snapshotLocked() Update {
	u := Update{
		TotalAttempts: t.totalAttempts,
		TotalRedFlags: t.totalRedFlags,
	}
	for canon, votes := range t.votes {
		switch {
		case votes > u.Best.Votes || (votes == u.Best.Votes && u.Best.Votes > 0 && canon < u.Best.Canonical):
			// 新的最高票，或同票但字典序更小：原最高票降为次高。
			if u.Best.Votes > u.RunnerUp.Votes || (u.Best.Votes == u.RunnerUp.Votes && u.Best.Votes > 0) {
				u.RunnerUp = u.Best
			}
			u.Best = Entry{Canonical: canon, Votes: votes}
		case votes > u.RunnerUp.Votes:
			u.RunnerUp = Entry{Canonical: canon, Votes: votes}
		}
	}
	return u
}
