// Package httpserver wires the nutrition engine into an HTTP API.
package httpserver

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/macrohub/server/internal/auth"
	"github.com/macrohub/server/internal/config"
	"github.com/macrohub/server/internal/foodparse"
	"github.com/macrohub/server/internal/goals"
	"github.com/macrohub/server/internal/history"
	"github.com/macrohub/server/internal/macros"
	"github.com/macrohub/server/internal/mealplan"
	"github.com/macrohub/server/internal/nutrient"
	"github.com/macrohub/server/internal/profile"
)

// Server представляет HTTP сервер
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	authMiddleware *auth.Middleware

	parser     *foodparse.Parser
	resolver   *nutrient.Resolver
	aggregator *macros.Aggregator
	engine     *mealplan.Engine

	closers []interface{ Close() error }
}

// New создаёт новый HTTP сервер
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initEngine()
	s.routes()
	return s
}

// initEngine строит парсер, источники нутриентов и движок рекомендаций
func (s *Server) initEngine() {
	s.parser = foodparse.NewParser(foodparse.DefaultCatalog())

	var sources []nutrient.Source
	for _, name := range s.config.FoodSources {
		switch name {
		case config.SourceLocal:
			src := nutrient.NewLocalSource(s.config.FoodDBPath)
			sources = append(sources, src)
			s.closers = append(s.closers, src)
		case config.SourceCommunity:
			src := nutrient.NewCommunitySource(s.config.CommunityDBPath)
			sources = append(sources, src)
			s.closers = append(s.closers, src)
		case config.SourceUSDA:
			timeout := time.Duration(s.config.RemoteTimeoutMS) * time.Millisecond
			sources = append(sources, nutrient.NewRemoteSource(s.config.USDAAPIKey, timeout, float64(s.config.RemoteRPS)))
		}
	}
	log.Printf("nutrient sources enabled: %v", s.config.FoodSources)

	s.resolver = nutrient.NewResolver(sources...)
	s.aggregator = macros.NewAggregator(s.resolver)

	g := goals.Goals{
		GoalType:      s.config.GoalType,
		WeightKg:      s.config.GoalWeightKg,
		HeightCm:      s.config.GoalHeightCm,
		Age:           s.config.GoalAge,
		Sex:           s.config.GoalSex,
		ActivityLevel: s.config.ActivityLevel,
		ProteinPerKg:  s.config.ProteinPerKg,
		CalorieTarget: s.config.CalorieTarget,
		SodiumLimitMg: s.config.SodiumLimitMg,
	}

	analyzer := history.NewAnalyzer(
		s.config.DietDir,
		s.config.CuisineMapPath,
		s.config.HistoryCachePath,
		s.config.HistoryDays,
	)
	store := mealplan.NewStore(s.config.MealTemplatesPath)
	loadProfile := func() profile.Profile { return profile.Load(s.config.ProfilePath) }

	s.engine = mealplan.NewEngine(store, g, loadProfile, analyzer)
}

// routes регистрирует маршруты
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevToken)

	// POST /v1/meals/analyze - parse free text and total the macros
	s.mux.HandleFunc("POST /v1/meals/analyze", s.handleAnalyzeMeal)

	// GET /v1/foods/search - search nutrient sources
	s.mux.HandleFunc("GET /v1/foods/search", s.handleSearchFoods)

	// GET /v1/meals/suggest - scored meal suggestions
	s.mux.HandleFunc("GET /v1/meals/suggest", s.handleSuggestMeals)
}

// Start запускает HTTP сервер
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("Сервер запущен на http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Analyze API: http://localhost%s/v1/meals/analyze\n", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// Handler собирает цепочку middleware: CORS → Rate Limit → Logging → Auth → Router
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	if s.authMiddleware != nil {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	}
	handler = RequestLogMiddleware(handler)
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

// Close закрывает источники и освобождает ресурсы
func (s *Server) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
