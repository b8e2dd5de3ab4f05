package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/macrohub/server/internal/foodparse"
	"github.com/macrohub/server/internal/macros"
	"github.com/macrohub/server/internal/nutrient"
)

const maxAnalyzeBodyBytes = 64 << 10

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Mentions []foodparse.Mention `json:"mentions"`
	Totals   macros.Totals       `json:"totals"`
}

type searchResponse struct {
	Query   string            `json:"query"`
	Results []nutrient.Record `json:"results"`
}

// handleHealthz возвращает статус сервера
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyzeMeal разбирает описание еды и считает итоговые макросы.
// POST /v1/meals/analyze
func (s *Server) handleAnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	body := http.MaxBytesReader(w, r.Body, maxAnalyzeBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a text field")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeAPIError(w, http.StatusBadRequest, "empty_text", "text must not be empty")
		return
	}

	mentions := s.parser.Parse(req.Text)
	totals := s.aggregator.Aggregate(r.Context(), mentions)

	writeJSON(w, http.StatusOK, analyzeResponse{
		Mentions: mentions,
		Totals:   totals,
	})
}

// handleSearchFoods ищет еду по всем настроенным источникам.
// GET /v1/foods/search?q=...&limit=...
func (s *Server) handleSearchFoods(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeAPIError(w, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeAPIError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = v
	}

	results := s.resolver.Resolve(r.Context(), query, limit)
	if results == nil {
		results = []nutrient.Record{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}

// handleSuggestMeals отдаёт рекомендации с остатком дневного бюджета.
// GET /v1/meals/suggest?meal_type=...&count=...&date=...
func (s *Server) handleSuggestMeals(w http.ResponseWriter, r *http.Request) {
	mealType := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("meal_type")))
	switch mealType {
	case "", "breakfast", "lunch", "dinner", "snack":
	default:
		writeAPIError(w, http.StatusBadRequest, "invalid_meal_type", "meal_type must be breakfast, lunch, dinner or snack")
		return
	}

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeAPIError(w, http.StatusBadRequest, "invalid_count", "count must be a non-negative integer")
			return
		}
		count = v
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeAPIError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
	}

	writeJSON(w, http.StatusOK, s.engine.Suggest(mealType, count, date))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
