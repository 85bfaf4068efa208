package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/voicetutor/internal/ai"
	"github.com/example/voicetutor/internal/database"
	"github.com/example/voicetutor/internal/excel"
	"github.com/example/voicetutor/internal/logger"
	"github.com/example/voicetutor/internal/notify"
	"github.com/example/voicetutor/internal/scheduler"
)

func main() {
	importPath := flag.String("import", "", "import sentence bank from an Excel or CSV file and exit")
	flag.Parse()

	// Missing .env is fine in production, env vars come from the host.
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := database.Connect(); err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer database.Close()

	var chat *ai.ChatGPT
	if os.Getenv("OPENAI_API_KEY") != "" {
		chat, err = ai.New()
		if err != nil {
			log.Fatal("failed to create AI client", "error", err)
		}
	} else {
		log.Info("OPENAI_API_KEY not set, summaries and translations fall back")
	}

	if *importPath != "" {
		runImport(*importPath, chat, log)
		return
	}

	gateway := database.NewGateway()

	var sched *scheduler.Scheduler
	if os.Getenv("TELEGRAM_TOKEN") != "" {
		notifier, err := notify.NewTelegram()
		if err != nil {
			log.Fatal("failed to create telegram notifier", "error", err)
		}
		sched = scheduler.New(notifier, gateway, log)
		sched.Start()
		log.Info("review reminder scheduler started")
	} else {
		log.Info("TELEGRAM_TOKEN not set, review reminders disabled")
	}

	log.Info("voicetutor started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("shutting down", "signal", sig.String())

	if sched != nil {
		sched.Stop()
	}
}

func runImport(path string, chat *ai.ChatGPT, log *logger.Logger) {
	config := excel.DefaultImportConfig()
	config.FilePath = path
	if chat != nil {
		config.Translator = chat
	}

	result, err := excel.ImportSentences(config)
	if err != nil {
		log.Fatal("import failed", "error", err)
	}

	total, err := database.NewSentenceBankRepository().Count()
	if err != nil {
		log.Warn("failed to count sentence bank", "error", err)
	}
	log.Info("import finished",
		"processed", result.TotalProcessed,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"translated", result.Translated,
		"bank_total", total)
	for _, msg := range result.Errors {
		log.Warn("import row skipped", "detail", msg)
	}
}
