package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/rescuemap/internal/api"
	"github.com/dmitrijs2005/rescuemap/internal/config"
	"github.com/dmitrijs2005/rescuemap/internal/directory"
	"github.com/dmitrijs2005/rescuemap/internal/feedback"
	"github.com/dmitrijs2005/rescuemap/internal/guard"
	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"github.com/dmitrijs2005/rescuemap/internal/repositories/sessionrecord"
	"github.com/dmitrijs2005/rescuemap/internal/rescue"
	"github.com/dmitrijs2005/rescuemap/internal/session"
)

// App wires the RescueMap client together: config, session store, guard,
// credential validator, and the rescue/feedback services behind the views.
type App struct {
	config    *config.Config
	log       logging.Logger
	sessions  *session.Store
	validator *directory.Validator
	guard     *guard.Guard
	rescue    *rescue.Service
	feedback  *feedback.Service

	db     *sql.DB
	reader *bufio.Reader
	filter models.PriorityFilter
}

// NewApp builds the App from config: opens the local session database,
// seeds the demo user directory, and constructs the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault(c.LogLevel)

	db, err := sessionrecord.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	dir, err := directory.NewSeededDirectory(directory.DefaultSeed())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(sessionrecord.NewSQLiteRepository(db), log)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.HTTPTimeout, log)

	return &App{
		config:    c,
		log:       log,
		sessions:  store,
		validator: directory.NewValidator(dir, log, c.AuthLatency),
		guard:     guard.New(store),
		rescue:    rescue.NewService(apiClient, log),
		feedback:  feedback.NewService(feedback.DefaultSeed(), log, c.AuthLatency),
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		filter:    models.FilterAll,
	}, nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run restores the persisted session and enters the REPL. The guard keeps
// protected views blocked until the restore has resolved.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.sessions.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	a.Root(ctx)
}

// GuardState reports the route guard's current state.
func (a *App) GuardState() guard.State {
	return a.guard.Current()
}

func (a *App) getStatus() string {
	state := a.sessions.State()
	if state.IsLoading {
		return "(loading)"
	}
	if state.User != nil {
		return "(" + state.User.Email + ")"
	}
	return ""
}
