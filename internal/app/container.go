// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"log/slog"

	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/infra/config"
	"github.com/runoshun/goals/internal/infra/goalstore"
	"github.com/runoshun/goals/internal/infra/idgen"
	"github.com/runoshun/goals/internal/infra/kvstore"
	"github.com/runoshun/goals/internal/infra/logging"
	"github.com/runoshun/goals/internal/infra/watcher"
	"github.com/runoshun/goals/internal/usecase"
)

// Options selects the files the container works with.
type Options struct {
	ConfigPath  string // Config file (empty = default global config)
	DataDir     string // Data directory override (empty = [store].dir or default)
	LogToStderr bool   // Also log warnings and errors to stderr
}

// Config holds the resolved application paths.
type Config struct {
	ConfigPath string // Path to config.toml
	DataDir    string // Directory holding the store and logs
	StorePath  string // File holding the key-value store
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Goals         domain.GoalRepository
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	store     kvstore.Store
	closeLog  func() error

	// Configuration
	Config Config
}

// New loads the configuration and opens the store and log file.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader(opts.ConfigPath)
	appConfig, err := loader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = appConfig.Store.Dir
	}
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	if dataDir == "" {
		return nil, errors.New("cannot determine data directory; set --data-dir")
	}

	var extra []slog.Handler
	if opts.LogToStderr {
		extra = append(extra, logging.StderrHandler(slog.LevelWarn))
	}
	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level), extra...)
	for _, w := range appConfig.Warnings {
		logger.Warn("", "config", w)
	}

	store, err := kvstore.Open(appConfig.Store.Backend, dataDir, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &Container{
		Goals:         goalstore.New(store, logger),
		Clock:         domain.RealClock{},
		IDs:           idgen.NewULID(),
		Logger:        logger,
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader.Path()),
		AppConfig:     appConfig,
		store:         store,
		closeLog:      logger.Close,
		Config: Config{
			ConfigPath: loader.Path(),
			DataDir:    dataDir,
			StorePath:  store.Path(),
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, goals domain.GoalRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Goals:         goals,
		Clock:         clock,
		IDs:           ids,
		Logger:        logger,
		ConfigLoader:  config.NewLoader(cfg.ConfigPath),
		ConfigManager: config.NewManager(cfg.ConfigPath),
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	if c.store != nil {
		errs = append(errs, c.store.Close())
	}
	if c.closeLog != nil {
		errs = append(errs, c.closeLog())
	}
	return errors.Join(errs...)
}

// Categories returns the configured category table.
func (c *Container) Categories() domain.CategoryTable {
	return c.AppConfig.Categories
}

// NewWatcher returns a watcher for the store file.
func (c *Container) NewWatcher() (*watcher.Watcher, error) {
	return watcher.New(c.Config.StorePath, c.Logger)
}

// UseCase factory methods

// CreateGoalUseCase returns a new CreateGoal use case.
func (c *Container) CreateGoalUseCase() *usecase.CreateGoal {
	return usecase.NewCreateGoal(c.Goals, c.IDs, c.Clock, c.Logger, c.Categories(), c.AppConfig.NewGoalCategory())
}

// DeleteGoalUseCase returns a new DeleteGoal use case.
func (c *Container) DeleteGoalUseCase() *usecase.DeleteGoal {
	return usecase.NewDeleteGoal(c.Goals, c.Logger)
}

// ToggleMilestoneUseCase returns a new ToggleMilestone use case.
func (c *Container) ToggleMilestoneUseCase() *usecase.ToggleMilestone {
	return usecase.NewToggleMilestone(c.Goals, c.Clock, c.Logger)
}

// SetProgressUseCase returns a new SetProgress use case.
func (c *Container) SetProgressUseCase() *usecase.SetProgress {
	return usecase.NewSetProgress(c.Goals, c.Clock, c.Logger)
}

// ListGoalsUseCase returns a new ListGoals use case.
func (c *Container) ListGoalsUseCase() *usecase.ListGoals {
	return usecase.NewListGoals(c.Goals, c.Clock, c.Categories())
}

// ShowGoalUseCase returns a new ShowGoal use case.
func (c *Container) ShowGoalUseCase() *usecase.ShowGoal {
	return usecase.NewShowGoal(c.Goals)
}

// GoalStatsUseCase returns a new GoalStats use case.
func (c *Container) GoalStatsUseCase() *usecase.GoalStats {
	return usecase.NewGoalStats(c.Goals, c.Clock)
}

// ExportGoalsUseCase returns a new ExportGoals use case.
func (c *Container) ExportGoalsUseCase() *usecase.ExportGoals {
	return usecase.NewExportGoals(c.Goals)
}

// ImportGoalsUseCase returns a new ImportGoals use case.
func (c *Container) ImportGoalsUseCase() *usecase.ImportGoals {
	return usecase.NewImportGoals(c.Goals, c.IDs, c.Clock, c.Logger, c.AppConfig.NewGoalCategory())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig, c.Config.DataDir)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
