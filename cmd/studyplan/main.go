package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hsato/studyplan/internal/cli"
	"github.com/hsato/studyplan/internal/db"
	"github.com/hsato/studyplan/internal/repository"
	"github.com/hsato/studyplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studyplan/studyplan.db
	dbPath := os.Getenv("STUDYPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studyplan", "studyplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	ruleRepo := repository.NewSQLiteRuleRepo(database)

	// Wire unit of work for transactional completion logging
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	planSvc := service.NewPlanService(profileRepo, eventRepo, historyRepo, planRepo, ruleRepo)

	app := &cli.App{
		Plans:   planSvc,
		Profile: service.NewProfileService(profileRepo, planRepo, planSvc),
		Events:  service.NewEventService(eventRepo, planRepo),
		History: service.NewHistoryService(historyRepo, uow),
		Rules:   service.NewRulesService(ruleRepo, planRepo, planSvc),
	}

	// Plans are keyed by local calendar date, normalized to UTC midnight.
	app.Today = func() time.Time {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	// Detect interactive terminal for the setup wizard and timer.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
