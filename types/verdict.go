package types

import "time"

// Outcome is the variant of a Verdict.
type Outcome string

const (
	// OutcomeWon 最高票领先次高票至少 K 票。
	OutcomeWon Outcome = "WON"
	// OutcomeInconclusive 预算耗尽仍未达成胜出条件。Answer 携带当前领先者，
	// 仅作质量遥测，调用方不得将其当作胜出答案。
	OutcomeInconclusive Outcome = "INCONCLUSIVE"
	// OutcomeAborted 超时或外部取消，不合成任何答案。
	OutcomeAborted Outcome = "ABORTED"
)

// Abort reasons carried by Verdict.Reason.
const (
	AbortReasonTimeout  = "timeout"
	AbortReasonCanceled = "canceled"
)

// Verdict is the final output of one consensus decision, returned to the
// caller together with the ordered ballot audit trail. Immutable.
type Verdict struct {
	TaskID  string  `json:"task_id"`
	Outcome Outcome `json:"outcome"`

	// Answer 胜出（或 INCONCLUSIVE 时领先）的规范形式答案。ABORTED 时为空。
	Answer        string `json:"answer,omitempty"`
	Votes         int    `json:"votes"`
	RunnerUpVotes int    `json:"runner_up_votes"`
	Margin        int    `json:"margin"`

	// Reason 补充说明：INCONCLUSIVE 的原因或 ABORTED 的触发来源。
	Reason string `json:"reason,omitempty"`

	TotalAttempts int           `json:"total_attempts"`
	TotalRedFlags int           `json:"total_red_flags"`
	Elapsed       time.Duration `json:"elapsed"`

	// Ballots 完整审计轨迹，按计入顺序排列。持久化由调用方负责。
	Ballots []Ballot `json:"ballots"`
}

// Won reports whether the decision reached statistical consensus.
func (v *Verdict) Won() bool {
	return v.Outcome == OutcomeWon
}
