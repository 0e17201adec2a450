package services

// High-stress thresholds from the 57-item Brief Job Stress Questionnaire
// summation method. Do not change these without a cited revision of the
// instrument.
const (
	ReactionThreshold = 77
	StressorThreshold = 76
	SupportThreshold  = 36
)

// Canonical rationale lines attached to a classification. The presentation
// layer localizes these for display.
const (
	ReasonElevatedReaction  = "elevated mind-body stress reaction total"
	ReasonStressorSupport   = "elevated stress-factor total combined with support level"
	ReasonWithinNormalRange = "total stress level within normal range"
)

// Result is the outcome of the high-stress determination.
type Result struct {
	HighStress bool     `json:"high_stress"`
	Reasons    []string `json:"reasons"`
}

// GroupTotal sums scale scores over a group of scale ids. Scales missing
// from the map count as 0, so the classifier is total over any input.
func GroupTotal(scaleScores map[string]int, group []string) int {
	total := 0
	for _, id := range group {
		total += scaleScores[id]
	}
	return total
}

// Classify applies the fixed threshold rules to the grouped scale totals.
// Both rules are always evaluated; either or both may mark the result as
// high stress, and each contributes its own rationale line.
func Classify(scaleScores map[string]int) Result {
	reaction := GroupTotal(scaleScores, ReactionScales)
	stressor := GroupTotal(scaleScores, StressorScales)
	support := GroupTotal(scaleScores, SupportScales)

	var res Result
	if reaction >= ReactionThreshold {
		res.HighStress = true
		res.Reasons = append(res.Reasons, ReasonElevatedReaction)
	}
	if stressor >= StressorThreshold && support >= SupportThreshold {
		res.HighStress = true
		res.Reasons = append(res.Reasons, ReasonStressorSupport)
	}
	if !res.HighStress {
		res.Reasons = append(res.Reasons, ReasonWithinNormalRange)
	}
	return res
}
