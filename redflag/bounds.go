package redflag

import (
	"strings"

	"github.com/BaSui01/quorum/types"
)

// Token-cap defaults by model family. Larger reasoning models produce longer
// well-formed answers, so they get a higher cap. Overridable via the policy.
const (
	defaultTokenCapLarge = 1200
	defaultTokenCapSmall = 750
)

// largeModelMarkers 命中即认为是长输出模型家族。
var largeModelMarkers = []string{"o1", "claude", "grok", "sonnet", "opus", "haiku", "gpt-4"}

// DeriveBounds computes the effective red-flag bounds for one task. It runs
// once before sampling starts; the result stays fixed for the whole decision.
//
// Two adjustments are applied on top of the caller-supplied bounds:
//   - a model-family token cap when the policy leaves MaxTokens unset and the
//     task names a model;
//   - tightened caps for low-trust sources (halved MaxLen and MaxTokens).
func DeriveBounds(b types.RedFlagBounds, task *types.Task) types.RedFlagBounds {
	eff := b

	if eff.MaxTokens == 0 && task.Model != "" {
		eff.MaxTokens = defaultTokenCapSmall
		model := strings.ToLower(task.Model)
		for _, marker := range largeModelMarkers {
			if strings.Contains(model, marker) {
				eff.MaxTokens = defaultTokenCapLarge
				break
			}
		}
	}

	if task.Trust == types.TrustLow {
		if eff.MaxLen > 0 {
			eff.MaxLen /= 2
		}
		if eff.MaxTokens > 0 {
			eff.MaxTokens /= 2
		}
	}

	return eff
}
