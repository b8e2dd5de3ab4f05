package main

import (
	"log"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/macrohub/server/internal/config"
	"github.com/macrohub/server/internal/httpserver"
)

func main() {
	cfg := config.Load()

	printStartupBanner(cfg)
	validateProductionConfig(cfg)

	server := httpserver.New(cfg)
	defer server.Close()

	log.Fatal(server.Start())
}

// printStartupBanner logs a one-time summary of the resolved configuration.
// No secrets are ever printed, only masked indicators ("set" / "not set").
func printStartupBanner(cfg *config.Config) {
	log.Println("========== MacroHub API ==========")
	log.Printf("  env              = %s", cfg.Env)
	log.Printf("  port             = %d", cfg.Port)

	// ---- Data ----
	log.Println("---- data ----")
	log.Printf("  data_dir         = %s", cfg.DataDir)
	log.Printf("  diet_dir         = %s", cfg.DietDir)
	log.Printf("  meal_templates   = %s", cfg.MealTemplatesPath)
	log.Printf("  cuisine_map      = %s", cfg.CuisineMapPath)
	log.Printf("  profile          = %s", cfg.ProfilePath)
	log.Printf("  history_days     = %d", cfg.HistoryDays)

	// ---- Nutrient sources ----
	log.Println("---- sources ----")
	log.Printf("  food_sources     = %s", strings.Join(cfg.FoodSources, ","))
	log.Printf("  food_db          = %s", cfg.FoodDBPath)
	log.Printf("  community_db     = %s", cfg.CommunityDBPath)
	log.Printf("  usda_api_key     = %s", setOrNot(cfg.USDAAPIKey))
	log.Printf("  remote_timeout   = %dms", cfg.RemoteTimeoutMS)
	log.Printf("  remote_rps       = %d", cfg.RemoteRPS)

	// ---- Auth ----
	log.Println("---- auth ----")
	log.Printf("  auth_required    = %t", cfg.AuthRequired)
	log.Printf("  jwt_secret       = %s", secretStatus(cfg.JWTSecret, "change_me"))
	log.Printf("  jwt_issuer       = %s", cfg.JWTIssuer)

	log.Println("==================================")
}

// validateProductionConfig performs fatal checks that only matter in non-local envs.
func validateProductionConfig(cfg *config.Config) {
	isProd := cfg.Env == "production" || cfg.Env == "staging"

	// JWT_SECRET must not be default in production
	if isProd && cfg.AuthRequired && cfg.JWTSecret == "change_me" {
		log.Fatalf("FATAL auth: JWT_SECRET must not be 'change_me' in %s with AUTH_REQUIRED=1", cfg.Env)
	}

	if len(cfg.FoodSources) == 0 {
		log.Fatal("FATAL sources: FOOD_SOURCES resolved to an empty list")
	}
}

// ---- helpers (no secrets) ----

func setOrNot(v string) string {
	if strings.TrimSpace(v) == "" {
		return "not set"
	}
	return "set"
}

func secretStatus(v, insecureDefault string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "not set"
	}
	if v == insecureDefault {
		return "set (DEFAULT, insecure '" + insecureDefault + "')"
	}
	return "set (custom)"
}
