package voting

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/BaSui01/quorum/internal/metrics"
	"github.com/BaSui01/quorum/providers"
	"github.com/BaSui01/quorum/redflag"
	"github.com/BaSui01/quorum/tally"
	"github.com/BaSui01/quorum/types"
)

// sample is one completed generation call, error or not.
type sample struct {
	attempt int
	raw     string
	err     error
	latency time.Duration
}

// scheduler drives the sampling loop for a single decision. Built fresh per
// Decide call and discarded with the verdict.
type scheduler struct {
	task      *types.Task
	policy    types.Policy
	provider  providers.Generator
	filter    *redflag.Filter
	tally     *tally.Tally
	logger    *zap.Logger
	collector *metrics.Collector
}

// run executes the sampling loop until a win, budget exhaustion, timeout, or
// caller cancellation, and returns the verdict with the audit trail.
func (s *scheduler) run(ctx context.Context) *types.Verdict {
	start := time.Now()

	runCtx := ctx
	if s.policy.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.policy.Timeout)
		defer cancel()
	}
	// sampleCtx 单独可取消：胜出后停掉在途调用，但 run 本身继续收尾。
	sampleCtx, cancelSamples := context.WithCancel(runCtx)
	defer cancelSamples()

	// 缓冲区容纳全部预算，工作协程发送永不阻塞，迟到结果留在缓冲区
	// 被整体丢弃，避免二次计票。
	results := make(chan sample, s.policy.MaxAttempts)
	go s.launch(sampleCtx, results)

	ballots := make([]types.Ballot, 0, s.policy.MaxAttempts)
	var last tally.Update

	for processed := 0; processed < s.policy.MaxAttempts; {
		select {
		case smp := <-results:
			processed++
			ballot, update := s.record(smp)
			ballots = append(ballots, ballot)
			last = update

			if ballot.Counted() && update.AheadBy(s.policy.K) {
				cancelSamples()
				s.logger.Info("winner decided",
					zap.String("task_id", s.task.ID),
					zap.Int("ballots", processed),
					zap.Int("votes", update.Best.Votes),
					zap.Int("margin", update.Margin()),
					zap.Int("k", s.policy.K),
				)
				return s.verdict(types.OutcomeWon, "", update, ballots, start)
			}

		case <-runCtx.Done():
			cancelSamples()
			reason := types.AbortReasonCanceled
			if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
				reason = types.AbortReasonTimeout
			}
			s.logger.Warn("decision aborted",
				zap.String("task_id", s.task.ID),
				zap.String("reason", reason),
				zap.Int("ballots", len(ballots)),
			)
			v := s.verdict(types.OutcomeAborted, reason, last, ballots, start)
			v.Answer, v.Votes, v.RunnerUpVotes, v.Margin = "", 0, 0, 0
			return v
		}
	}

	// 预算耗尽：当前领先者随 INCONCLUSIVE 返回，仅作遥测。
	s.logger.Info("budget exhausted without consensus",
		zap.String("task_id", s.task.ID),
		zap.Int("max_attempts", s.policy.MaxAttempts),
		zap.Int("best_votes", last.Best.Votes),
		zap.Int("margin", last.Margin()),
	)
	return s.verdict(types.OutcomeInconclusive, "budget exhausted", last, ballots, start)
}

// launch feeds workers until the budget is spent or the context is canceled.
func (s *scheduler) launch(ctx context.Context, results chan<- sample) {
	sem := semaphore.NewWeighted(int64(s.policy.ConcurrencyLimit))
	var limiter *rate.Limiter
	if s.policy.LaunchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.policy.LaunchRate), 1)
	}

	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		go func(attempt int) {
			defer sem.Release(1)
			results <- s.sampleOnce(ctx, attempt)
		}(attempt)
	}
}

// sampleOnce performs one generation call.
func (s *scheduler) sampleOnce(ctx context.Context, attempt int) sample {
	if s.collector != nil {
		s.collector.SampleStarted(s.provider.Name())
		defer s.collector.SampleFinished(s.provider.Name())
	}

	start := time.Now()
	gen, err := s.provider.Generate(ctx, &providers.Request{
		Prompt:       s.task.Prompt,
		SystemPrompt: s.task.SystemPrompt,
		Model:        s.task.Model,
	})
	smp := sample{attempt: attempt, latency: time.Since(start)}
	if err != nil {
		smp.err = err
		return smp
	}
	smp.raw = gen.Text
	return smp
}

// record turns one completed sample into a ballot and updates the tally.
// 这是唯一触碰计票器的路径，胜出检测只针对这里返回的快照。
func (s *scheduler) record(smp sample) (types.Ballot, tally.Update) {
	ballot := types.Ballot{
		Attempt: smp.attempt,
		Raw:     smp.raw,
		Latency: smp.latency,
	}

	if smp.err != nil {
		// 供应商失败等价于红旗票，但单独打标便于观测。
		ballot.RedFlagged = true
		ballot.Reason = types.ReasonProviderError
		ballot.ProviderErr = true
		s.logger.Debug("provider call failed",
			zap.Int("attempt", smp.attempt),
			zap.Error(smp.err),
		)
		if s.collector != nil {
			s.collector.RecordProviderFailure(s.provider.Name())
		}
	} else if res := s.filter.Evaluate(smp.raw); res.Accepted {
		ballot.Canonical = res.Canonical
	} else {
		ballot.RedFlagged = true
		ballot.Reason = res.Reason
	}

	if s.collector != nil {
		s.collector.RecordBallot(s.provider.Name(), ballot.RedFlagged, smp.latency)
	}

	var update tally.Update
	if ballot.Counted() {
		update = s.tally.Record(ballot.Canonical)
	} else {
		update = s.tally.RecordRedFlag()
	}
	return ballot, update
}

func (s *scheduler) verdict(outcome types.Outcome, reason string, u tally.Update, ballots []types.Ballot, start time.Time) *types.Verdict {
	return &types.Verdict{
		TaskID:        s.task.ID,
		Outcome:       outcome,
		Answer:        u.Best.Canonical,
		Votes:         u.Best.Votes,
		RunnerUpVotes: u.RunnerUp.Votes,
		Margin:        u.Margin(),
		Reason:        reason,
		TotalAttempts: u.TotalAttempts,
		TotalRedFlags: u.TotalRedFlags,
		Elapsed:       time.Since(start),
		Ballots:       ballots,
	}
}
