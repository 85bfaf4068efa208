package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the shared database connection.
var DB *sqlx.DB

// Connect opens the database and bootstraps the schema. DATABASE_URL
// selects Postgres; otherwise a local SQLite file under data/ is used.
func Connect() error {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		db, err := sqlx.Connect("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		DB = db
		return initializeSchema()
	}

	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "voicetutor.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db
	return initializeSchema()
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates the tables if they don't exist. JSON-valued
// collections live in TEXT columns so the same schema works on both
// backends; "interval" is quoted because it is reserved in Postgres.
func initializeSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_progress (
			user_id TEXT PRIMARY KEY,
			words_learned INTEGER NOT NULL DEFAULT 0,
			current_topic TEXT NOT NULL DEFAULT '',
			last_position TEXT NOT NULL DEFAULT '',
			progress_percentage INTEGER NOT NULL DEFAULT 0,
			vocabulary TEXT NOT NULL DEFAULT '{}',
			topics_completed TEXT NOT NULL DEFAULT '[]',
			conversation_history TEXT NOT NULL DEFAULT '{}',
			last_session_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sentences_progress (
			user_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			generated_sentences TEXT NOT NULL DEFAULT '[]',
			completed_sentences INTEGER NOT NULL DEFAULT 0,
			current_sentence_index INTEGER NOT NULL DEFAULT 0,
			total_sentences INTEGER NOT NULL DEFAULT 0,
			current_level INTEGER NOT NULL DEFAULT 1,
			learned_sentences_history TEXT NOT NULL DEFAULT '[]',
			session_status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMP NOT NULL,
			last_activity TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, session_id)
		)`,
		`CREATE TABLE IF NOT EXISTS podcast_progress (
			user_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL DEFAULT '',
			last_topic TEXT NOT NULL DEFAULT '',
			last_context TEXT NOT NULL DEFAULT '',
			last_position TEXT NOT NULL DEFAULT '',
			conversation_summary TEXT NOT NULL DEFAULT '',
			topics_discussed TEXT NOT NULL DEFAULT '[]',
			vocabulary_used TEXT NOT NULL DEFAULT '{}',
			total_conversations INTEGER NOT NULL DEFAULT 0,
			total_minutes INTEGER NOT NULL DEFAULT 0,
			fluency_level TEXT NOT NULL DEFAULT 'beginner',
			common_mistakes TEXT NOT NULL DEFAULT '[]',
			improvements TEXT NOT NULL DEFAULT '[]',
			conversation_history TEXT NOT NULL DEFAULT '{}',
			last_session_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_personal_context (
			user_id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			nickname TEXT NOT NULL DEFAULT '',
			age INTEGER NOT NULL DEFAULT 0,
			gender TEXT NOT NULL DEFAULT '',
			native_language TEXT NOT NULL DEFAULT 'Arabic',
			family_members TEXT NOT NULL DEFAULT '{}',
			friends TEXT NOT NULL DEFAULT '[]',
			pets TEXT NOT NULL DEFAULT '[]',
			hobbies TEXT NOT NULL DEFAULT '[]',
			favorite_foods TEXT NOT NULL DEFAULT '[]',
			favorite_colors TEXT NOT NULL DEFAULT '[]',
			favorite_subjects TEXT NOT NULL DEFAULT '[]',
			occupation TEXT NOT NULL DEFAULT '',
			workplace_or_school TEXT NOT NULL DEFAULT '',
			daily_routine TEXT NOT NULL DEFAULT '{}',
			city TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			home_items TEXT NOT NULL DEFAULT '[]',
			room_description TEXT NOT NULL DEFAULT '',
			learning_goals TEXT NOT NULL DEFAULT '[]',
			dream_job TEXT NOT NULL DEFAULT '',
			places_want_to_visit TEXT NOT NULL DEFAULT '[]',
			current_mood TEXT NOT NULL DEFAULT '',
			recent_activities TEXT NOT NULL DEFAULT '[]',
			objects_around TEXT NOT NULL DEFAULT '[]',
			context_completeness INTEGER NOT NULL DEFAULT 0,
			last_context_update TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_achievements (
			user_id TEXT PRIMARY KEY,
			total_points INTEGER NOT NULL DEFAULT 0,
			experience_points INTEGER NOT NULL DEFAULT 0,
			current_level INTEGER NOT NULL DEFAULT 1,
			points_to_next_level INTEGER NOT NULL DEFAULT 100,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_study_date TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vocabulary_cards (
			user_id TEXT NOT NULL,
			word TEXT NOT NULL,
			translation TEXT NOT NULL DEFAULT '',
			example_sentence TEXT NOT NULL DEFAULT '',
			topic TEXT NOT NULL DEFAULT '',
			ease_factor REAL NOT NULL DEFAULT 2.5,
			"interval" INTEGER NOT NULL DEFAULT 1,
			repetitions INTEGER NOT NULL DEFAULT 0,
			next_review_date TIMESTAMP NOT NULL,
			last_reviewed_at TIMESTAMP NOT NULL,
			times_seen INTEGER NOT NULL DEFAULT 0,
			times_correct INTEGER NOT NULL DEFAULT 0,
			times_wrong INTEGER NOT NULL DEFAULT 0,
			mastery_level INTEGER NOT NULL DEFAULT 0,
			is_mastered BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, word)
		)`,
		`CREATE TABLE IF NOT EXISTS daily_stats (
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			minutes_studied INTEGER NOT NULL DEFAULT 0,
			words_learned INTEGER NOT NULL DEFAULT 0,
			words_reviewed INTEGER NOT NULL DEFAULT 0,
			lessons_completed INTEGER NOT NULL DEFAULT 0,
			correct_answers INTEGER NOT NULL DEFAULT 0,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			points_earned INTEGER NOT NULL DEFAULT 0,
			daily_accuracy REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			telegram_chat_id BIGINT NOT NULL DEFAULT 0,
			notification_enabled BOOLEAN NOT NULL DEFAULT true,
			notification_hour INTEGER NOT NULL DEFAULT 9,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sentence_bank (
			level INTEGER NOT NULL,
			category TEXT NOT NULL,
			english TEXT NOT NULL,
			arabic TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (level, category, english)
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			table := tableName(stmt)
			return fmt.Errorf("failed to create %s table: %w", table, err)
		}
	}
	return nil
}

func tableName(stmt string) string {
	fields := strings.Fields(stmt)
	for i, f := range fields {
		if strings.EqualFold(f, "EXISTS") && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return "unknown"
}
