package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/edushare/internal/client/api"
	"github.com/dmitrijs2005/edushare/internal/client/config"
	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/render"
	"github.com/dmitrijs2005/edushare/internal/client/services"
	"github.com/dmitrijs2005/edushare/internal/client/session"
	"github.com/dmitrijs2005/edushare/internal/client/ui"
	"github.com/dmitrijs2005/edushare/internal/client/view"
	"github.com/dmitrijs2005/edushare/internal/logging"
)

// memoryDSN selects the in-process session store.
const memoryDSN = ":memory:"

// wait is a test seam for the pause before the post-login landing view.
var wait = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type App struct {
	config    *config.Config
	auth      services.AuthService
	resources services.ResourceService
	log       logging.Logger

	notifier *ui.Notifier
	overlays *ui.Overlays
	submits  map[string]*ui.SubmitControl

	views    map[render.Variant]*view.List
	current  render.Variant
	renderer render.Renderer

	reader *bufio.Reader
	out    io.Writer
	db     *sql.DB
}

// Submit control names.
const (
	submitLogin    = "login"
	submitRegister = "register"
	submitUpload   = "upload"
)

// NewApp opens the session store, builds the API client and services, and
// returns an App reading from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var (
		store session.Store
		db    *sql.DB
	)
	if c.SessionDB == memoryDSN {
		store = session.NewMemoryStore()
	} else {
		var err error
		db, err = session.OpenDB(ctx, c.SessionDB)
		if err != nil {
			log.Error(ctx, "error initializing session database", "path", c.SessionDB, "err", err)
			return nil, err
		}
		store = session.NewSQLiteStore(db)
	}

	apiClient, err := api.NewHTTPClient(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithTokenSource(services.SessionTokens(store)),
		api.WithLogger(log.With("component", "api")),
	)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	auth := services.NewAuthService(apiClient, store)
	res := services.NewResourceService(apiClient, auth)

	a := newApp(c, auth, res, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, auth services.AuthService, res services.ResourceService, log logging.Logger, r *bufio.Reader, w io.Writer) *App {
	return &App{
		config:    c,
		auth:      auth,
		resources: res,
		log:       log,
		notifier:  ui.NewNotifier(w, c.NotificationTTL),
		overlays:  &ui.Overlays{},
		submits: map[string]*ui.SubmitControl{
			submitLogin:    ui.NewSubmitControl("Login", "Logging in..."),
			submitRegister: ui.NewSubmitControl("Register", "Registering..."),
			submitUpload:   ui.NewSubmitControl("Upload", "Uploading..."),
		},
		views: map[render.Variant]*view.List{
			render.Catalog: view.NewList(render.Catalog),
			render.Student: view.NewList(render.Student),
			render.Teacher: view.NewList(render.Teacher),
		},
		current:  render.Catalog,
		renderer: render.TextRenderer{},
		reader:   r,
		out:      w,
	}
}

// Run shows the home view and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return a.Root(ctx)
}

// Close releases the session database.
func (a *App) Close() error {
	a.notifier.Dismiss()
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// session returns the stored session or nil. A store failure is logged and
// treated as logged out.
func (a *App) session(ctx context.Context) *models.Session {
	sess, err := a.auth.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "session read failed", "err", err)
		return nil
	}
	return sess
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session(ctx) != nil
}

func (a *App) hasRole(ctx context.Context, r models.Role) bool {
	return a.session(ctx).HasRole(r)
}

func (a *App) getStatus(ctx context.Context) string {
	s := a.current.String()
	if sess := a.session(ctx); sess != nil {
		s = fmt.Sprintf("%s, %s | %s", ui.Sanitize(sess.User.Username), sess.User.Role, s)
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
