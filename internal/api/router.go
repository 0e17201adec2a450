package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"stresscheck/internal/middleware"
	"stresscheck/internal/services"
	"stresscheck/internal/utils"
)

// DefaultQuestionsPerPage mirrors the questionnaire's original pagination.
const DefaultQuestionsPerPage = 10

// Router serves the questionnaire and session endpoints over a fixed,
// read-only item catalog. Sessions are the only mutable state.
type Router struct {
	store       Store
	items       []services.Item
	itemsByID   map[string]services.Item
	perPage     int
	now         func() time.Time
	idGenerator func() string
}

// NewRouter wires the API against the given item catalog. An empty catalog is
// a valid state: questionnaire and submit endpoints then report an error to
// the client instead of proceeding.
func NewRouter(items []services.Item, perPage int) *Router {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	byID := make(map[string]services.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Router{
		store:       newMemoryStore(),
		items:       items,
		itemsByID:   byID,
		perPage:     perPage,
		now:         func() time.Time { return time.Now().UTC() },
		idGenerator: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:12] },
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/questionnaire", rt.handleQuestionnaire) // GET
	mux.HandleFunc("/api/sessions", rt.handleSessions)           // POST
	mux.HandleFunc("/api/sessions/", rt.handleSessionScoped)     // GET/POST/DELETE /api/sessions/{id}[/answers|/submit|/results]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// GET /api/questionnaire?page=N&lang=xx
func (rt *Router) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	if len(rt.items) == 0 {
		writeError(w, http.StatusServiceUnavailable, utils.T(locale, "catalog.empty"))
		return
	}

	total := len(rt.items)
	numPages := (total + rt.perPage - 1) / rt.perPage
	page := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if page < 0 {
		page = 0
	}
	if page > numPages-1 {
		page = numPages - 1
	}
	start := page * rt.perPage
	end := start + rt.perPage
	if end > total {
		end = total
	}

	type outOption struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	type outItem struct {
		ID      string `json:"id"`
		Text    string `json:"text"`
		Reverse bool   `json:"reverse"`
	}
	options := make([]outOption, 0, len(services.Options))
	for _, opt := range services.Options {
		options = append(options, outOption{Value: string(opt), Label: utils.T(locale, "option."+string(opt))})
	}
	out := make([]outItem, 0, end-start)
	for _, it := range rt.items[start:end] {
		out = append(out, outItem{ID: it.ID, Text: it.Text, Reverse: it.Reverse})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"page":        page,
		"num_pages":   numPages,
		"total_items": total,
		"options":     options,
		"items":       out,
	})
}

// POST /api/sessions
func (rt *Router) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := &Session{ID: rt.idGenerator(), Answers: map[string]services.Option{}, CreatedAt: rt.now()}
	rt.store.AddSession(sess)
	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id":  sess.ID,
		"total_items": len(rt.items),
		"created_at":  sess.CreatedAt.Format(time.RFC3339),
	})
}

// Scoped session routes:
//
//	GET    /api/sessions/{id}          progress
//	DELETE /api/sessions/{id}          reset (discard the session)
//	POST   /api/sessions/{id}/answers  record answers
//	POST   /api/sessions/{id}/submit   score, classify and store the result
//	GET    /api/sessions/{id}/results  previously computed result
func (rt *Router) handleSessionScoped(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(rest, "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	id := parts[0]

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			rt.handleProgress(w, id, locale)
		case http.MethodDelete:
			rt.handleReset(w, id, locale)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch parts[1] {
	case "answers":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rt.handleAnswers(w, r, id, locale)
	case "submit":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rt.handleSubmit(w, id, locale)
	case "results":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rt.handleResults(w, id, locale)
	default:
		http.NotFound(w, r)
	}
}

func (rt *Router) handleProgress(w http.ResponseWriter, id, locale string) {
	answered, ok := rt.store.AnsweredCount(id)
	if !ok {
		writeError(w, http.StatusNotFound, utils.T(locale, "session.not_found"))
		return
	}
	total := len(rt.items)
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": id,
		"answered":   answered,
		"total":      total,
		"complete":   total > 0 && answered == total,
	})
}

func (rt *Router) handleReset(w http.ResponseWriter, id, locale string) {
	if !rt.store.DeleteSession(id) {
		writeError(w, http.StatusNotFound, utils.T(locale, "session.not_found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// POST /api/sessions/{id}/answers
// { answers: [{item_id, option}] }
func (rt *Router) handleAnswers(w http.ResponseWriter, r *http.Request, id, locale string) {
	var req struct {
		Answers []struct {
			ItemID string `json:"item_id"`
			Option string `json:"option"`
		} `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	answers := make(map[string]services.Option, len(req.Answers))
	for _, a := range req.Answers {
		if a.ItemID == "" {
			continue
		}
		// Unknown item ids are skipped; options are stored as given and the
		// scorer treats anything outside the vocabulary as unanswered.
		if _, ok := rt.itemsByID[a.ItemID]; !ok {
			continue
		}
		answers[a.ItemID] = services.Option(a.Option)
	}
	if !rt.store.PutAnswers(id, answers) {
		writeError(w, http.StatusNotFound, utils.T(locale, "session.not_found"))
		return
	}
	answered, _ := rt.store.AnsweredCount(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"answered": answered,
		"total":    len(rt.items),
	})
}

// POST /api/sessions/{id}/submit
func (rt *Router) handleSubmit(w http.ResponseWriter, id, locale string) {
	if len(rt.items) == 0 {
		writeError(w, http.StatusServiceUnavailable, utils.T(locale, "catalog.empty"))
		return
	}
	answers, ok := rt.store.SnapshotAnswers(id)
	if !ok {
		writeError(w, http.StatusNotFound, utils.T(locale, "session.not_found"))
		return
	}
	if len(answers) != len(rt.items) {
		writeError(w, http.StatusConflict, utils.T(locale, "submit.incomplete"))
		return
	}

	itemScores := services.ComputeItemScores(rt.items, answers)
	scaleScores := services.ComputeScaleScores(itemScores)
	classification := services.Classify(scaleScores)
	res := &SessionResult{
		ItemScores:     itemScores,
		ScaleScores:    scaleScores,
		Classification: classification,
		SubmittedAt:    rt.now(),
	}
	if !rt.store.SetResult(id, res) {
		writeError(w, http.StatusNotFound, utils.T(locale, "session.not_found"))
		return
	}
	writeJSON(w, http.StatusOK, rt.resultPayload(id, res, locale))
}

// GET /api/sessions/{id}/results
func (rt *Router) handleResults(w http.ResponseWriter, id, locale string) {
	if rt.store.GetSession(id) == nil {
		writeError(w, http.StatusNotFound, utils.T(locale, "session.not_found"))
		return
	}
	res, ok := rt.store.GetResult(id)
	if !ok {
		writeError(w, http.StatusNotFound, utils.T(locale, "results.not_ready"))
		return
	}
	writeJSON(w, http.StatusOK, rt.resultPayload(id, res, locale))
}

var reasonKeys = map[string]string{
	services.ReasonElevatedReaction: "result.reason.reaction",
	services.ReasonStressorSupport:  "result.reason.stressor_support",
}

func (rt *Router) resultPayload(id string, res *SessionResult, locale string) map[string]any {
	type scaleScore struct {
		ScaleID string `json:"scale_id"`
		Name    string `json:"name"`
		Score   int    `json:"score"`
	}
	ordered := make([]scaleScore, 0, len(services.Scales()))
	for _, sc := range services.Scales() {
		ordered = append(ordered, scaleScore{
			ScaleID: sc.ID,
			Name:    services.ScaleName(sc, locale),
			Score:   res.ScaleScores[sc.ID],
		})
	}

	headline := utils.T(locale, "result.headline.normal")
	if res.Classification.HighStress {
		headline = utils.T(locale, "result.headline.high")
	}
	details := make([]string, 0, len(res.Classification.Reasons))
	for _, reason := range res.Classification.Reasons {
		if key, ok := reasonKeys[reason]; ok {
			details = append(details, utils.T(locale, key))
		}
	}

	return map[string]any{
		"session_id":   id,
		"high_stress":  res.Classification.HighStress,
		"reasons":      res.Classification.Reasons,
		"headline":     headline,
		"details":      details,
		"disclaimer":   utils.T(locale, "result.disclaimer"),
		"scale_scores": ordered,
		"heatmap":      services.BuildHeatmap(res.ScaleScores, locale),
		"charts":       services.BuildCharts(res.ScaleScores, locale),
		"submitted_at": res.SubmittedAt.Format(time.RFC3339),
	}
}
