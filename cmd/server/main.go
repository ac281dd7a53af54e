package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/google"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/adapters/session"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, Google) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/spots.json")
	stayPath := config.Get("STAY_TIMES_PATH", "data/stay_times.yaml")
	redisAddr := config.Get("REDIS_ADDR", "localhost:6379")
	port := config.Get("PORT", "8080")

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	if err := config.LoadStayTimes(stayPath); err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(sqlDB, seedPath); err != nil {
		log.Fatal(err)
	}

	// Google providers use a persistent leg cache to avoid repeated
	// route-matrix calls: the local SQLite file by default, or a shared
	// Postgres cache when DATABASE_URL is set.
	var matrixCache google.LegCache = cache.NewSqliteMatrixCache(sqlDB)
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pgDB, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgDB.Close()
		matrixCache = cache.NewSQLMatrixCache(pgDB)
	}
	travel := google.NewMatrixProvider(apiKey, matrixCache)
	candidates := google.NewPlacesProvider(apiKey)

	sessions := session.NewRedisStore(redis.NewClient(&redis.Options{Addr: redisAddr}))

	repo := repositories.NewSqliteSpotRepository(sqlDB)
	router := api.NewRouter(repo, travel, candidates, sessions)

	// Timeouts are tuned for cold-cache multi-day planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	// The seed file is optional for the server; run dbtool to seed explicitly.
	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("Seed file %q not found, skipping seed", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
