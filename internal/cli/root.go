package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/config"
	"github.com/bhushansable/Gurukrupa-Mess/internal/i18n"
	"github.com/bhushansable/Gurukrupa-Mess/internal/inflight"
	"github.com/bhushansable/Gurukrupa-Mess/internal/service"
	"github.com/bhushansable/Gurukrupa-Mess/internal/session"
	"github.com/bhushansable/Gurukrupa-Mess/internal/storage"
)

// seedTimeout bounds the best-effort seed call made before each command.
const seedTimeout = 3 * time.Second

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Errors returned by the auth guards.
var (
	ErrNotAuthenticated = session.ErrNotAuthenticated
	ErrAdminRequired    = errors.New("admin access required")
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Backend string
	Store   string
	Lang    string
	NoSeed  bool

	// Test hooks; nil means open Store and use the default HTTP client.
	kv         storage.KV
	httpClient *http.Client

	app *app
}

// app is everything a command needs, built once per invocation.
type app struct {
	client   *api.Client
	session  *session.Store
	t        *i18n.Translator
	menu     *service.MenuService
	checkout *service.CheckoutService
	subs     *service.SubscriptionService
	orders   *service.AdminOrderService
	close    func() error
}

// NewRootCommand creates the root command for the tiffin CLI. cfg supplies
// the flag defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	return newRootCommand(cfg, &RootOptions{})
}

func newRootCommand(cfg *config.Config, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiffin",
		Short: "Gurukrupa Mess - ghar ka swad",
		Long: `Order home-style tiffins, subscribe to meal plans and track deliveries
from Gurukrupa Mess. Admins can manage orders, the menu and plans.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := i18n.ParseLang(opts.Lang); err != nil {
				return err
			}
			if cmd.Name() == "help" {
				return nil
			}
			a, err := opts.open(cmd.Context())
			if err != nil {
				return fail(newFormatter(opts, cmd), err)
			}
			opts.app = a
			if !opts.NoSeed && cmd.Name() != "seed" {
				a.seedQuietly(cmd.Context())
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", cfg.BackendURL, "backend base URL (without /api)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", cfg.StorePath, "path of the local session store")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", cfg.Lang, "display language (en|mr)")
	cmd.PersistentFlags().BoolVar(&opts.NoSeed, "no-seed", false, "skip seeding the backend before the command")

	// Add subcommands
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewProfileCommand(opts))
	cmd.AddCommand(NewHomeCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewPlansCommand(opts))
	cmd.AddCommand(NewSubscribeCommand(opts))
	cmd.AddCommand(NewSubscriptionsCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewSupportCommand(opts))
	cmd.AddCommand(NewAdminCommand(opts))

	return cmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(cfg *config.Config) int {
	opts := &RootOptions{}
	return execute(newRootCommand(cfg, opts), opts)
}

// execute runs cmd and releases the store afterwards. Cobra skips post-run
// hooks when a command fails, so the release cannot live there.
func execute(cmd *cobra.Command, opts *RootOptions) int {
	defer opts.closeApp()
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	if !errors.As(err, new(*ExitError)) {
		// Anything cobra rejects before RunE is a usage problem.
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitCommandError
	}
	return GetExitCode(err)
}

func (o *RootOptions) open(ctx context.Context) (*app, error) {
	lang, err := i18n.ParseLang(o.Lang)
	if err != nil {
		return nil, err
	}

	kv, closeKV := o.kv, func() error { return nil }
	if c, ok := kv.(io.Closer); ok {
		closeKV = c.Close
	}
	if kv == nil {
		db, err := storage.OpenSQLite(o.Store)
		if err != nil {
			return nil, err
		}
		kv, closeKV = db, db.Close
	}

	var clientOpts []api.Option
	if o.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(o.httpClient))
	}
	client := api.New(o.Backend, clientOpts...)

	sess := session.New(client, kv)
	if err := sess.Restore(ctx); err != nil {
		closeKV()
		return nil, err
	}

	guard := inflight.New()
	return &app{
		client:   client,
		session:  sess,
		t:        i18n.NewTranslator(lang),
		menu:     service.NewMenuService(client),
		checkout: service.NewCheckoutService(client, guard),
		subs:     service.NewSubscriptionService(client, guard),
		orders:   service.NewAdminOrderService(client, guard),
		close:    closeKV,
	}, nil
}

func (o *RootOptions) closeApp() {
	if o.app == nil {
		return
	}
	if err := o.app.close(); err != nil {
		log.Printf("WARNING: failed to close session store: %v", err)
	}
	o.app = nil
}

// seedQuietly fires the idempotent seed call. The backend may already be
// seeded or unreachable; either way the command goes on.
func (a *app) seedQuietly(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()
	if _, err := a.client.Seed(ctx); err != nil {
		log.Printf("WARNING: seed skipped: %v", err)
	}
}

func (a *app) requireUser() error {
	if !a.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

func (a *app) requireAdmin() error {
	if err := a.requireUser(); err != nil {
		return err
	}
	if !a.session.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// fail reports err as the blocking notice for the action and returns the
// exit error for it.
func fail(f *OutputFormatter, err error) error {
	status := 0
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
		f.VerboseLog("backend answered %d", status)
	}
	if werr := f.Error(err.Error(), status); werr != nil {
		log.Printf("ERROR: failed to write error output: %v", werr)
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

// render writes data through the formatter, failing the command if output
// cannot be written.
func render(f *OutputFormatter, data any, text func(w io.Writer) error) error {
	if err := f.Render(data, text); err != nil {
		return &ExitError{Code: ExitFailure, Message: "write output", Err: err}
	}
	return nil
}
