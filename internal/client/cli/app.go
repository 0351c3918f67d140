package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/dmitrijs2005/vehiclehub/internal/client/api"
	"github.com/dmitrijs2005/vehiclehub/internal/client/config"
	"github.com/dmitrijs2005/vehiclehub/internal/client/credstore"
	"github.com/dmitrijs2005/vehiclehub/internal/client/localdb"
	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
	"github.com/dmitrijs2005/vehiclehub/internal/client/resource"
	"github.com/dmitrijs2005/vehiclehub/internal/client/session"
	"github.com/dmitrijs2005/vehiclehub/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  *session.Session
	users    *resource.Store[models.User]
	vehicles *resource.Store[models.Vehicle]
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires the credential store, session and resource stores from c.
//
// An empty DatabasePath keeps the session in memory. A database that cannot
// be opened is logged and the session is not persisted; it never prevents
// start-up.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", c.APIBaseURL)
	}

	var (
		db    *sql.DB
		store credstore.Store
	)
	switch {
	case c.DatabasePath == "":
		store = credstore.NewMemoryStore()
	default:
		db, err = localdb.Open(ctx, c.DatabasePath)
		if err != nil {
			log.Warn(ctx, "session storage unavailable", "path", c.DatabasePath, "error", err)
			store = credstore.Unavailable{}
		} else {
			store = credstore.NewSQLStore(db, log)
		}
	}

	hc := api.NewHTTPClient()
	hc.Timeout = c.RequestTimeout

	authClient := api.NewClient(c.APIBaseURL, hc, nil, log)
	sess := session.New(authClient, store, log)
	apiClient := authClient.WithTokens(sess)

	return &App{
		config:   c,
		log:      log,
		db:       db,
		session:  sess,
		users:    resource.NewUserStore(apiClient, log),
		vehicles: resource.NewVehicleStore(apiClient, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores the previous session and serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to vehiclehub CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	if !a.session.InitAuth(ctx) {
		return
	}
	if a.session.ValidateToken(ctx) {
		if u := a.session.User(); u != nil {
			fmt.Fprintf(a.out, "Welcome back, %s\n", displayName(*u))
		}
	}
}

// Close releases the session database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt status as "(<login> <state>)".
func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil && u.LoginID != "" {
		s = u.LoginID + " "
	}
	if a.isLoggedIn() {
		s += "authenticated"
	} else {
		s += "anonymous"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) pageSize(size int) int {
	if size > 0 {
		return size
	}
	return a.config.PageSize
}

func displayName(u models.UserProfile) string {
	if u.Name != "" {
		return fmt.Sprintf("%s (%s)", u.Name, u.LoginID)
	}
	return u.LoginID
}
