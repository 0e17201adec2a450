package services

// Option is one of the four fixed answer choices, ordered from strongest to
// weakest agreement.
type Option string

const (
	OptionAgree            Option = "agree"             // そうだ
	OptionMostlyAgree      Option = "mostly_agree"      // まあそうだ
	OptionSlightlyDisagree Option = "slightly_disagree" // ややちがう
	OptionDisagree         Option = "disagree"          // ちがう
)

// Options lists the answer vocabulary in display order.
var Options = []Option{OptionAgree, OptionMostlyAgree, OptionSlightlyDisagree, OptionDisagree}

// likertPoints is the width of the answer scale.
const likertPoints = 4

// OptionScore maps an option to its forward score (strongest agreement = 4,
// weakest = 1). ok is false for values outside the fixed vocabulary; such
// answers count as unanswered.
func OptionScore(opt Option) (int, bool) {
	switch opt {
	case OptionAgree:
		return 4, true
	case OptionMostlyAgree:
		return 3, true
	case OptionSlightlyDisagree:
		return 2, true
	case OptionDisagree:
		return 1, true
	}
	return 0, false
}

// ReverseScore maps a raw Likert value to its reverse-scored value
// given the number of points in the scale.
// raw is expected to be within [1, points]. Out-of-range values are clamped.
func ReverseScore(raw, points int) int {
	if points < 2 {
		return raw
	}
	if raw < 1 {
		raw = 1
	}
	if raw > points {
		raw = points
	}
	return (points + 1) - raw
}

// ItemScore scores a single answered item, honoring its reverse flag.
func ItemScore(it Item, opt Option) (int, bool) {
	s, ok := OptionScore(opt)
	if !ok {
		return 0, false
	}
	if it.Reverse {
		s = ReverseScore(s, likertPoints)
	}
	return s, true
}

// ComputeItemScores scores every catalog item that has an answer. Items
// without an answer, or whose answer falls outside the option vocabulary,
// are omitted from the result so partial progress can still be scored.
func ComputeItemScores(items []Item, answers map[string]Option) map[string]int {
	scores := make(map[string]int, len(answers))
	for _, it := range items {
		opt, ok := answers[it.ID]
		if !ok {
			continue
		}
		if s, ok := ItemScore(it, opt); ok {
			scores[it.ID] = s
		}
	}
	return scores
}

// ComputeScaleScores sums item scores into the defined scales. Items missing
// from itemScores contribute 0 here, unlike the omission above: a scale total
// is always defined once the scale is being displayed. The result has exactly
// one key per defined scale.
func ComputeScaleScores(itemScores map[string]int) map[string]int {
	totals := make(map[string]int, len(scales))
	for _, sc := range scales {
		sum := 0
		for _, id := range sc.ItemIDs {
			sum += itemScores[id]
		}
		totals[sc.ID] = sum
	}
	return totals
}
