package utils

// Minimal server-side i18n for fixed keys. The instrument is Japanese, so
// Japanese is the canonical locale; English is provided for API consumers.

var translations = map[string]map[string]string{
	"ja": {
		"health.ok":                      "正常",
		"catalog.empty":                  "質問データを読み込めませんでした。管理者にお問い合わせください。",
		"session.not_found":              "セッションが見つかりません。",
		"results.not_ready":              "診断結果はまだ計算されていません。",
		"submit.incomplete":              "すべての質問に回答してください。",
		"result.headline.high":           "高ストレス状態にある可能性が高いです。",
		"result.headline.normal":         "現在のところ、総合的なストレスレベルは標準の範囲内と考えられます。",
		"result.reason.reaction":         "心身のストレス反応の合計点数が高いレベルにあります。",
		"result.reason.stressor_support": "仕事のストレス要因と、周囲のサポートの状況から、高いストレス状態にある可能性が考えられます。",
		"result.disclaimer":              "この結果は、あくまで入力に基づく簡易的な評価です。気になる点があれば、専門家（医師、カウンセラーなど）にご相談ください。",
		"option.agree":                   "そうだ",
		"option.mostly_agree":            "まあそうだ",
		"option.slightly_disagree":       "ややちがう",
		"option.disagree":                "ちがう",
	},
	"en": {
		"health.ok":                      "ok",
		"catalog.empty":                  "The question catalog could not be loaded. Please contact the administrator.",
		"session.not_found":              "Session not found.",
		"results.not_ready":              "Results have not been computed yet.",
		"submit.incomplete":              "Please answer every question before viewing results.",
		"result.headline.high":           "You are likely to be in a high-stress state.",
		"result.headline.normal":         "Your overall stress level currently appears to be within the normal range.",
		"result.reason.reaction":         "Your combined score for mind and body stress reactions is at a high level.",
		"result.reason.stressor_support": "Given your job stressors and the support around you, a high-stress state is possible.",
		"result.disclaimer":              "This result is a simplified evaluation based only on your input. If anything concerns you, please consult a professional such as a doctor or counselor.",
		"option.agree":                   "Agree",
		"option.mostly_agree":            "Somewhat agree",
		"option.slightly_disagree":       "Somewhat disagree",
		"option.disagree":                "Disagree",
	},
}

// T returns the translated string for key in locale; falls back to Japanese.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["ja"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
