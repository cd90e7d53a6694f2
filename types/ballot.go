package types

import "time"

// RedFlagReason identifies the disqualifying defect of a ballot.
type RedFlagReason string

const (
	ReasonTooShort           RedFlagReason = "TOO_SHORT"
	ReasonTooLong            RedFlagReason = "TOO_LONG"
	ReasonTooManyTokens      RedFlagReason = "TOO_MANY_TOKENS"
	ReasonNotCanonicalizable RedFlagReason = "NOT_CANONICALIZABLE"
	ReasonMissingField       RedFlagReason = "MISSING_FIELD"
	ReasonProviderError      RedFlagReason = "PROVIDER_ERROR"
)

// Ballot 记录一次完成的采样结果。由调度器在调用完成时创建，
// 提交给计票器后不再修改。
type Ballot struct {
	// Attempt 采样序号，从 1 开始，按发起顺序分配。
	Attempt int `json:"attempt"`
	// Raw 供应商返回的原始文本。供应商调用失败时为空。
	Raw string `json:"raw"`
	// Canonical 规范形式。红旗票为空。
	Canonical string `json:"canonical,omitempty"`
	// RedFlagged 红旗标记：该票计入预算但不计入票数。
	RedFlagged bool `json:"red_flagged"`
	// Reason 红旗原因码，仅红旗票有值。
	Reason RedFlagReason `json:"reason,omitempty"`
	// ProviderErr 区分供应商调用失败与内容红旗，用于可观测性。
	ProviderErr bool `json:"provider_err,omitempty"`
	// Latency 单次调用耗时。
	Latency time.Duration `json:"latency"`
}

// Counted reports whether the ballot contributes a vote.
func (b Ballot) Counted() bool {
	return !b.RedFlagged
}
