// submodule cmd wires the CLI surface to the router, catalog and store
package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"libbot/internal/catalog"
	"libbot/internal/repositories"
	"libbot/internal/router"
	"libbot/internal/shared"
)

// localUser is the owner identity for list operations run from the terminal
// rather than through the messaging platform.
const localUser = "local"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	catalog catalog.Searcher
	store   repositories.ListStore
	logger  *log.Logger
	output  io.Writer
	metrics *shared.Metrics

	db *sql.DB
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Catalog and Store are optional; when nil they are constructed on demand
// from the configuration. Tests inject fakes here.
type RunnerOpts struct {
	Config  *shared.Config
	Catalog catalog.Searcher
	Store   repositories.ListStore
	Logger  *log.Logger
	Output  io.Writer
	Metrics *shared.Metrics
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Metrics == nil {
		opts.Metrics = shared.NewMetrics()
	}

	return &Runner{
		config:  opts.Config,
		catalog: opts.Catalog,
		store:   opts.Store,
		logger:  opts.Logger,
		output:  opts.Output,
		metrics: opts.Metrics,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, serveCommand, searchCommand, listCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// reloadConfig swaps in the config file named by the command's --config flag
// when it differs from the one loaded at startup.
func (r *Runner) reloadConfig(cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return nil
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	r.config = config
	return nil
}

// openDatabase opens the configured SQLite database once and runs
// migrations. Subsequent calls reuse the connection.
func (r *Runner) openDatabase() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	return db, nil
}

// listStore returns the injected store, or one backed by the configured
// database.
func (r *Runner) listStore() (repositories.ListStore, error) {
	if r.store != nil {
		return r.store, nil
	}

	db, err := r.openDatabase()
	if err != nil {
		return nil, err
	}
	r.store = repositories.NewListRepository(db)
	return r.store, nil
}

// searcher returns the injected catalog client, or a Google Books client
// built from the configured API key.
func (r *Runner) searcher() (catalog.Searcher, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}

	svc, err := catalog.NewGoogleBooksService(r.config.Credentials.BooksAPIKey, catalog.GoogleBooksOpts{
		Metrics: r.metrics,
	})
	if err != nil {
		return nil, err
	}
	r.catalog = svc
	return r.catalog, nil
}

// commandRouter assembles the router over the runner's collaborators.
func (r *Runner) commandRouter() (*router.Router, error) {
	searcher, err := r.searcher()
	if err != nil {
		return nil, err
	}
	store, err := r.listStore()
	if err != nil {
		return nil, err
	}
	return router.New(searcher, store, r.logger, r.metrics), nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
