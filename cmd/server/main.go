package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "clubvoley/internal/adapters/email"
	web "clubvoley/internal/adapters/http"
	"clubvoley/internal/adapters/http/perf"
	"clubvoley/internal/adapters/storage"
	accountStore "clubvoley/internal/adapters/storage/account"
	attendanceStore "clubvoley/internal/adapters/storage/attendance"
	paymentStore "clubvoley/internal/adapters/storage/payment"
	playerStore "clubvoley/internal/adapters/storage/player"
	trainingStore "clubvoley/internal/adapters/storage/training"
	"clubvoley/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; real deployments set env directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("CLUB_DB_PATH", "club.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Run database migrations
	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	acctStore := accountStore.NewSQLiteStore(timedDB)
	plStore := playerStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:    acctStore,
		PlayerStore:     plStore,
		PaymentStore:    paymentStore.NewSQLiteStore(timedDB),
		TrainingStore:   trainingStore.NewSQLiteStore(timedDB),
		AttendanceStore: attendanceStore.NewSQLiteStore(timedDB),
	}

	// Seed the well-known admin and demo player accounts (idempotent)
	seedInput := orchestrators.SeedAccountsInput{
		AdminEmail:     envOrDefault("CLUB_ADMIN_EMAIL", "admin@club.com"),
		AdminPassword:  envOrDefault("CLUB_ADMIN_PASSWORD", "admin123"),
		PlayerEmail:    envOrDefault("CLUB_PLAYER_EMAIL", "jugador@club.com"),
		PlayerPassword: envOrDefault("CLUB_PLAYER_PASSWORD", "jugador123"),
	}
	seedDeps := orchestrators.SeedAccountsDeps{
		AccountStore: acctStore,
		PlayerStore:  plStore,
	}
	if err := orchestrators.ExecuteSeedAccounts(context.Background(), seedInput, seedDeps); err != nil {
		log.Fatalf("failed to seed accounts: %v", err)
	}

	// Demo schedule for development only
	if os.Getenv("CLUB_ENV") != "production" {
		if err := orchestrators.ExecuteSeedDemoTrainings(context.Background(), time.Now(), orchestrators.SeedDemoTrainingsDeps{
			TrainingStore: stores.TrainingStore,
		}); err != nil {
			log.Fatalf("failed to seed demo trainings: %v", err)
		}
	}

	// Configure email sender
	resendKey := os.Getenv("CLUB_RESEND_KEY")
	emailFrom := envOrDefault("CLUB_EMAIL_FROM", "Club de Vóley <noreply@clubvoley.ar>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if os.Getenv("CLUB_ENV") == "production" {
			log.Println("WARNING: CLUB_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CLUB_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing + dashboard)
	mux := web.NewMux("static", stores, collector)

	// Start server
	addr := envOrDefault("CLUB_ADDR", ":8080")
	log.Printf("Club %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("CLUB_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
