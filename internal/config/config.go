package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Known food source names for FOOD_SOURCES.
const (
	SourceLocal     = "local"
	SourceCommunity = "community"
	SourceUSDA      = "usda"
)

// Config содержит конфигурацию приложения
type Config struct {
	Env      string // local | staging | production
	Port     int
	LogLevel string

	// Data directories
	DataDir string
	DietDir string

	// Nutrient sources
	FoodSources     []string // subset of local, community, usda
	FoodDBPath      string
	CommunityDBPath string
	USDAAPIKey      string
	RemoteTimeoutMS int
	RemoteRPS       int

	// Meal planning
	MealTemplatesPath string
	CuisineMapPath    string
	ProfilePath       string
	HistoryCachePath  string
	HistoryDays       int

	// Goals
	GoalType      string
	GoalWeightKg  float64
	GoalHeightCm  float64
	GoalAge       int
	GoalSex       string
	ActivityLevel string
	ProteinPerKg  float64
	CalorieTarget int
	SodiumLimitMg int

	// CORS
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	// Rate Limiting
	RateLimitRPS   int
	RateLimitBurst int

	// Authentication
	AuthRequired  bool
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	// APP_ENV (fallback to ENV for backward compat, default: local)
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	// PORT (default: 8080)
	port := envInt("PORT", 8080)

	// LOG_LEVEL (default: debug)
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	// ---------- Data directories ----------
	dataDir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dataDir == "" {
		dataDir = "data"
	}
	dietDir := strings.TrimSpace(os.Getenv("DIET_DIR"))
	if dietDir == "" {
		dietDir = dataDir + "/diet"
	}

	// ---------- Nutrient sources ----------
	foodSources := parseFoodSources(os.Getenv("FOOD_SOURCES"))

	foodDBPath := strings.TrimSpace(os.Getenv("FOOD_DB_PATH"))
	if foodDBPath == "" {
		foodDBPath = dataDir + "/food_db.sqlite"
	}
	communityDBPath := strings.TrimSpace(os.Getenv("COMMUNITY_DB_PATH"))
	if communityDBPath == "" {
		communityDBPath = dataDir + "/opennutrition.sqlite"
	}
	usdaAPIKey := strings.TrimSpace(os.Getenv("USDA_API_KEY"))
	if usdaAPIKey == "" && containsSource(foodSources, SourceUSDA) {
		log.Println("WARNING: usda source enabled but USDA_API_KEY is not set, remote lookups disabled")
	}

	// REMOTE_TIMEOUT_MS (default: 5000, enforce > 0)
	remoteTimeoutMS := envInt("REMOTE_TIMEOUT_MS", 5000)
	if remoteTimeoutMS <= 0 {
		remoteTimeoutMS = 5000
	}

	// REMOTE_RPS (default: 2; 0 disables client-side throttling)
	remoteRPS := envInt("REMOTE_RPS", 2)

	// ---------- Meal planning ----------
	mealTemplatesPath := strings.TrimSpace(os.Getenv("MEAL_TEMPLATES_PATH"))
	if mealTemplatesPath == "" {
		mealTemplatesPath = dataDir + "/meal_templates.json"
	}
	cuisineMapPath := strings.TrimSpace(os.Getenv("CUISINE_MAP_PATH"))
	if cuisineMapPath == "" {
		cuisineMapPath = dataDir + "/ingredient_cuisine_map.json"
	}
	profilePath := strings.TrimSpace(os.Getenv("PROFILE_PATH"))
	if profilePath == "" {
		profilePath = dataDir + "/dietary_profile.json"
	}
	historyCachePath := strings.TrimSpace(os.Getenv("HISTORY_CACHE_PATH"))
	if historyCachePath == "" {
		historyCachePath = dataDir + "/meal_history_cache.json"
	}
	historyDays := envInt("HISTORY_DAYS", 3)
	if historyDays <= 0 {
		historyDays = 3
	}

	// ---------- Goals ----------
	goalType := strings.ToLower(strings.TrimSpace(os.Getenv("GOAL_TYPE")))
	goalSex := strings.ToLower(strings.TrimSpace(os.Getenv("GOAL_SEX")))
	activityLevel := strings.ToLower(strings.TrimSpace(os.Getenv("ACTIVITY_LEVEL")))

	// ---------- CORS ----------
	corsOrigins := parseCORSOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"), env)
	corsAllowCreds := os.Getenv("CORS_ALLOW_CREDENTIALS") == "1"

	// ---------- Rate Limiting ----------
	rateLimitRPS := envInt("RATE_LIMIT_RPS", 0)
	rateLimitBurst := envInt("RATE_LIMIT_BURST", 0)

	// ---------- Auth ----------
	authRequired := parseBoolEnv("AUTH_REQUIRED")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "change_me"
	}
	if jwtSecret == "change_me" && env != "local" {
		log.Println("WARNING: JWT_SECRET is set to 'change_me' in non-local environment!")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "macrohub"
	}

	// JWT_TTL_MINUTES (default: 10080 = 7 days)
	jwtTTLMinutes := envInt("JWT_TTL_MINUTES", 10080)

	return &Config{
		Env:      env,
		Port:     port,
		LogLevel: logLevel,

		DataDir: dataDir,
		DietDir: dietDir,

		FoodSources:     foodSources,
		FoodDBPath:      foodDBPath,
		CommunityDBPath: communityDBPath,
		USDAAPIKey:      usdaAPIKey,
		RemoteTimeoutMS: remoteTimeoutMS,
		RemoteRPS:       remoteRPS,

		MealTemplatesPath: mealTemplatesPath,
		CuisineMapPath:    cuisineMapPath,
		ProfilePath:       profilePath,
		HistoryCachePath:  historyCachePath,
		HistoryDays:       historyDays,

		GoalType:      goalType,
		GoalWeightKg:  envFloat("GOAL_WEIGHT_KG", 0),
		GoalHeightCm:  envFloat("GOAL_HEIGHT_CM", 0),
		GoalAge:       envInt("GOAL_AGE", 0),
		GoalSex:       goalSex,
		ActivityLevel: activityLevel,
		ProteinPerKg:  envFloat("PROTEIN_PER_KG", 0),
		CalorieTarget: envInt("CALORIE_TARGET", 0),
		SodiumLimitMg: envInt("SODIUM_LIMIT_MG", 0),

		CORSAllowedOrigins:   corsOrigins,
		CORSAllowCredentials: corsAllowCreds,

		RateLimitRPS:   rateLimitRPS,
		RateLimitBurst: rateLimitBurst,

		AuthRequired:  authRequired,
		JWTSecret:     jwtSecret,
		JWTIssuer:     jwtIssuer,
		JWTTTLMinutes: jwtTTLMinutes,
	}
}

// parseFoodSources parses FOOD_SOURCES as a comma-separated list.
// Unknown names are dropped with a warning; empty input enables everything.
func parseFoodSources(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{SourceLocal, SourceCommunity, SourceUSDA}
	}

	var sources []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "":
		case SourceLocal, SourceCommunity, SourceUSDA:
			if !containsSource(sources, p) {
				sources = append(sources, p)
			}
		default:
			log.Printf("WARNING: unknown food source %q in FOOD_SOURCES, skipping", p)
		}
	}
	return sources
}

func containsSource(sources []string, name string) bool {
	for _, s := range sources {
		if s == name {
			return true
		}
	}
	return false
}

// parseCORSOrigins parses CORS_ALLOWED_ORIGINS env var.
// In local mode, defaults to localhost origins if empty.
func parseCORSOrigins(raw, env string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if env == "local" {
			return []string{"http://localhost:3000", "http://localhost:8081"}
		}
		return nil // prod: deny by default
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// envInt reads an int env var with a default value.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseBoolEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}
