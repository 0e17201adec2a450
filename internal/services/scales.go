package services

// Scale is a named group of items whose scores sum to a sub-score.
// Definitions are process-wide constants; item ids referenced here are
// expected to exist in the loaded catalog.
type Scale struct {
	ID       string            `json:"id"`
	NameI18n map[string]string `json:"name_i18n"`
	ItemIDs  []string          `json:"item_ids"`
}

var scales = []Scale{
	{ID: "quantitative_load", NameI18n: map[string]string{"ja": "量的負担", "en": "Quantitative workload"}, ItemIDs: []string{"A1", "A2", "A3"}},
	{ID: "qualitative_load", NameI18n: map[string]string{"ja": "質的負担", "en": "Qualitative workload"}, ItemIDs: []string{"A4", "A5", "A6", "A7"}},
	{ID: "job_control", NameI18n: map[string]string{"ja": "裁量権", "en": "Job control"}, ItemIDs: []string{"A8", "A9", "A10"}},
	{ID: "job_fit", NameI18n: map[string]string{"ja": "仕事の適性", "en": "Job fitness"}, ItemIDs: []string{"A11", "A16"}},
	{ID: "workplace_relationships", NameI18n: map[string]string{"ja": "職場人間関係", "en": "Workplace relationships"}, ItemIDs: []string{"A12", "A13", "A14"}},
	{ID: "work_environment", NameI18n: map[string]string{"ja": "職場環境", "en": "Work environment"}, ItemIDs: []string{"A15"}},
	{ID: "meaningfulness", NameI18n: map[string]string{"ja": "働きがい", "en": "Meaningfulness of work"}, ItemIDs: []string{"A17"}},
	{ID: "vigor", NameI18n: map[string]string{"ja": "活気", "en": "Vigor"}, ItemIDs: []string{"B1", "B2", "B3"}},
	{ID: "irritability", NameI18n: map[string]string{"ja": "イライラ感", "en": "Irritability"}, ItemIDs: []string{"B4", "B5", "B6"}},
	{ID: "fatigue", NameI18n: map[string]string{"ja": "疲労感", "en": "Fatigue"}, ItemIDs: []string{"B7", "B8", "B9"}},
	{ID: "anxiety", NameI18n: map[string]string{"ja": "不安感", "en": "Anxiety"}, ItemIDs: []string{"B10", "B11", "B12"}},
	{ID: "depression", NameI18n: map[string]string{"ja": "抑うつ感", "en": "Depression"}, ItemIDs: []string{"B13", "B14", "B15", "B16", "B17", "B18"}},
	{ID: "physical_complaints", NameI18n: map[string]string{"ja": "身体愁訴", "en": "Physical complaints"}, ItemIDs: []string{"B19", "B20", "B21", "B22", "B23", "B24", "B25", "B26", "B27", "B28", "B29"}},
	{ID: "supervisor_support", NameI18n: map[string]string{"ja": "上司のサポート", "en": "Supervisor support"}, ItemIDs: []string{"C1", "C4", "C7"}},
	{ID: "coworker_support", NameI18n: map[string]string{"ja": "同僚のサポート", "en": "Coworker support"}, ItemIDs: []string{"C2", "C5", "C8"}},
	{ID: "family_friend_support", NameI18n: map[string]string{"ja": "家族・友人のサポート", "en": "Family and friend support"}, ItemIDs: []string{"C3", "C6", "C9"}},
	{ID: "job_satisfaction", NameI18n: map[string]string{"ja": "仕事満足度", "en": "Job satisfaction"}, ItemIDs: []string{"D1"}},
	{ID: "family_satisfaction", NameI18n: map[string]string{"ja": "家庭満足度", "en": "Family satisfaction"}, ItemIDs: []string{"D2"}},
}

// Scale groups used by the high-stress determination. meaningfulness,
// job_satisfaction and family_satisfaction appear on charts only and belong
// to no group.
var (
	StressorScales = []string{"quantitative_load", "qualitative_load", "job_control", "job_fit", "workplace_relationships", "work_environment"}
	ReactionScales = []string{"vigor", "irritability", "fatigue", "anxiety", "depression", "physical_complaints"}
	SupportScales  = []string{"supervisor_support", "coworker_support", "family_friend_support"}
)

// Scales returns the fixed scale definitions in display order.
func Scales() []Scale {
	return scales
}

// ScaleIDs returns the scale identifiers in definition order. Callers that
// need ordered scale scores iterate this instead of ranging over a map.
func ScaleIDs() []string {
	ids := make([]string, 0, len(scales))
	for _, sc := range scales {
		ids = append(ids, sc.ID)
	}
	return ids
}

// ScaleByID looks up a scale definition by its identifier.
func ScaleByID(id string) (Scale, bool) {
	for _, sc := range scales {
		if sc.ID == id {
			return sc, true
		}
	}
	return Scale{}, false
}

// ScaleName returns the display name for a scale in the given language,
// falling back to Japanese, the instrument's native wording.
func ScaleName(sc Scale, lang string) string {
	if n := sc.NameI18n[lang]; n != "" {
		return n
	}
	return sc.NameI18n["ja"]
}
