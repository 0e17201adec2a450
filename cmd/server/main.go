package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"stresscheck/internal/api"
	"stresscheck/internal/middleware"
	"stresscheck/internal/services"
	"stresscheck/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	addr := utils.SafeEnv("STRESSCHECK_ADDR", ":8080")
	commit := utils.SafeEnv("STRESSCHECK_COMMIT", "")
	buildTime := utils.SafeEnv("STRESSCHECK_BUILD_TIME", "")

	catalogPath := utils.SafeEnv("STRESSCHECK_CATALOG", "data/questions.csv")
	items := services.LoadItems(catalogPath)
	if len(items) == 0 {
		// Valid but unusable state: endpoints report the error to clients.
		log.Printf("item catalog %q is empty; questionnaire endpoints will return an error", catalogPath)
	} else {
		log.Printf("loaded %d questionnaire items from %s", len(items), catalogPath)
	}

	perPage := utils.SafeEnvInt("STRESSCHECK_PAGE_SIZE", api.DefaultQuestionsPerPage)

	mux := http.NewServeMux()
	api.NewRouter(items, perPage).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "stresscheck API",
			"locale":     locale,
			"msg":        utils.T(locale, "health.ok"),
			"items":      len(items),
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Serve the questionnaire frontend when a static dir is configured.
	if staticDir := utils.SafeEnv("STRESSCHECK_STATIC_DIR", ""); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.CORS(middleware.SecureHeaders(middleware.NoStore(middleware.LocaleMiddleware(mux))))

	log.Printf("stresscheck server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
