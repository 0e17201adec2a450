package services

// HeatmapTile is one colored cell of the results heatmap. Hue runs from 120
// (green, minimum score) down to 0 (red, maximum score).
type HeatmapTile struct {
	ScaleID   string  `json:"scale_id"`
	Name      string  `json:"name"`
	Score     int     `json:"score"`
	MaxScore  int     `json:"max_score"`
	Hue       float64 `json:"hue"`
	FontColor string  `json:"font_color"`
}

// BuildHeatmap produces one tile per scale in definition order. Scales
// missing from scaleScores render as 0.
func BuildHeatmap(scaleScores map[string]int, lang string) []HeatmapTile {
	tiles := make([]HeatmapTile, 0, len(scales))
	for _, sc := range scales {
		score := scaleScores[sc.ID]
		max := likertPoints * len(sc.ItemIDs)
		normalized := 0.0
		if max > 0 {
			normalized = float64(score) / float64(max)
		}
		hue := 120 * (1 - normalized)
		// White text is unreadable on the yellow-green mid-range.
		font := "white"
		if hue > 50 && hue < 130 {
			font = "black"
		}
		tiles = append(tiles, HeatmapTile{
			ScaleID:   sc.ID,
			Name:      ScaleName(sc, lang),
			Score:     score,
			MaxScore:  max,
			Hue:       hue,
			FontColor: font,
		})
	}
	return tiles
}

// ChartDef fixes one results chart: which scales it plots, the color ramp,
// and the rendered height in pixels.
type ChartDef struct {
	ID        string            `json:"id"`
	TitleI18n map[string]string `json:"title_i18n"`
	ScaleIDs  []string          `json:"scale_ids"`
	Colors    []string          `json:"colors"`
	Height    int               `json:"height"`
}

// Bar is a single row of a horizontal bar chart.
type Bar struct {
	ScaleID string `json:"scale_id"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Color   string `json:"color"`
}

// Chart pairs a definition with the bars computed from scale scores.
type Chart struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Height int    `json:"height"`
	Bars   []Bar  `json:"bars"`
}

var chartDefs = []ChartDef{
	{
		ID:        "stressor_balance",
		TitleI18n: map[string]string{"ja": "ストレス要因のバランス", "en": "Balance of job stressors"},
		ScaleIDs:  []string{"quantitative_load", "qualitative_load", "job_control", "job_fit", "workplace_relationships", "work_environment", "meaningfulness"},
		Colors:    []string{"#1f77b4", "#3a8ac1", "#559dce", "#70b0db", "#8bc3e8", "#a6d6f5", "#c1e9ff"},
		Height:    300,
	},
	{
		ID:        "stress_reactions",
		TitleI18n: map[string]string{"ja": "心身のストレス反応", "en": "Mind and body stress reactions"},
		ScaleIDs:  []string{"vigor", "irritability", "fatigue", "anxiety", "depression", "physical_complaints"},
		Colors:    []string{"#d62728", "#e05757", "#ea7a7a", "#f49d9d", "#ffc0c0", "#ffe3e3"},
		Height:    250,
	},
	{
		ID:        "support",
		TitleI18n: map[string]string{"ja": "周囲からのサポート", "en": "Support from others"},
		ScaleIDs:  []string{"supervisor_support", "coworker_support", "family_friend_support"},
		Colors:    []string{"#2ca02c", "#55b355", "#7fca7f"},
		Height:    150,
	},
}

// ChartDefs returns the fixed chart definitions.
func ChartDefs() []ChartDef {
	return chartDefs
}

// BuildCharts renders the bars for every chart definition. Scales missing
// from scaleScores plot as 0.
func BuildCharts(scaleScores map[string]int, lang string) []Chart {
	out := make([]Chart, 0, len(chartDefs))
	for _, def := range chartDefs {
		title := def.TitleI18n[lang]
		if title == "" {
			title = def.TitleI18n["ja"]
		}
		bars := make([]Bar, 0, len(def.ScaleIDs))
		for i, id := range def.ScaleIDs {
			name := id
			if sc, ok := ScaleByID(id); ok {
				name = ScaleName(sc, lang)
			}
			color := ""
			if i < len(def.Colors) {
				color = def.Colors[i]
			}
			bars = append(bars, Bar{ScaleID: id, Name: name, Score: scaleScores[id], Color: color})
		}
		out = append(out, Chart{ID: def.ID, Title: title, Height: def.Height, Bars: bars})
	}
	return out
}
