package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/dferenc/hireflow/internal/classify"
	"github.com/dferenc/hireflow/internal/cli"
	"github.com/dferenc/hireflow/internal/db"
	"github.com/dferenc/hireflow/internal/engine"
	"github.com/dferenc/hireflow/internal/generation"
	"github.com/dferenc/hireflow/internal/llm"
	"github.com/dferenc/hireflow/internal/questionbank"
	"github.com/dferenc/hireflow/internal/repository"
	"github.com/dferenc/hireflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.hireflow/hireflow.db
	dbPath := os.Getenv("HIREFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".hireflow", "hireflow.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	bank, err := questionbank.Load()
	if err != nil {
		return fmt.Errorf("loading question bank: %w", err)
	}

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	fallback := generation.NewFallbackGenerator()

	// The LLM generator is only wired when explicitly enabled; otherwise
	// templates are the intended output and completed sessions are not
	// reported as degraded.
	var primary engine.Generator = fallback
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		primary = generation.NewLLMGenerator(llmClient)
	}

	machine := engine.NewMachine(classify.NewPatternClassifier(), bank, primary, fallback)

	var observers []service.UseCaseObserver
	if os.Getenv("HIREFLOW_LOG_USECASES") == "true" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Conversation: service.NewConversationService(sessionRepo, uow, machine, observers...),
		Sessions:     service.NewAdminService(sessionRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
