package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/i18n"
	"github.com/bhushansable/Gurukrupa-Mess/internal/view"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo menu, plans and accounts into the backend",
		Long: `Ask the backend to load its demo data. Safe to run repeatedly:
an already seeded backend answers without changes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			res, err := a.client.Seed(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, res, func(w io.Writer) error {
				fmt.Fprintln(w, res.Message)
				if res.AdminEmail != "" {
					fmt.Fprintf(w, "admin:    %s / %s\n", res.AdminEmail, res.AdminPassword)
					fmt.Fprintf(w, "customer: %s / %s\n", res.CustomerEmail, res.CustomerPassword)
				}
				return nil
			})
		},
	}
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var req api.RegisterRequest
	cmd := &cobra.Command{
		Use:           "register",
		Short:         "Create an account and sign in",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			user, err := a.session.Register(cmd.Context(), req)
			if err != nil {
				return fail(f, err)
			}
			return render(f, user, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s, %s\n", a.t.T("welcome"), user.Name)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.Address, "address", "", "delivery address")
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:           "login",
		Short:         "Sign in and remember the session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			user, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return fail(f, err)
			}
			f.VerboseLog("signed in as %s (%s)", user.Email, user.Role)
			return render(f, user, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s, %s\n", a.t.T("welcome"), user.Name)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "Forget the stored session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.session.Logout(cmd.Context()); err != nil {
				return fail(f, err)
			}
			return render(f, nil, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, a.t.T("logout"))
				return err
			})
		},
	}
}

// NewProfileCommand creates the profile command and its update subcommand.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "profile",
		Short:         "Show the signed-in user",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileShow(rootOpts, cmd)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:           "show",
		Short:         "Show the signed-in user",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileShow(rootOpts, cmd)
		},
	})
	cmd.AddCommand(newProfileUpdateCommand(rootOpts))
	return cmd
}

func runProfileShow(opts *RootOptions, cmd *cobra.Command) error {
	a, f := opts.app, newFormatter(opts, cmd)
	if err := a.requireUser(); err != nil {
		return fail(f, err)
	}
	user := a.session.User()
	return render(f, user, func(w io.Writer) error {
		return view.Profile(w, a.t, user)
	})
}

func newProfileUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var name, phone, address, lang string
	cmd := &cobra.Command{
		Use:           "update",
		Short:         "Change name, phone, address or language preference",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireUser(); err != nil {
				return fail(f, err)
			}

			var req api.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("phone") {
				req.Phone = &phone
			}
			if flags.Changed("address") {
				req.Address = &address
			}
			if flags.Changed("language") {
				l, err := i18n.ParseLang(lang)
				if err != nil {
					return fail(f, err)
				}
				pref := string(l)
				req.LanguagePref = &pref
			}
			if req == (api.ProfileUpdate{}) {
				return fail(f, errors.New("nothing to update: pass --name, --phone, --address or --language"))
			}

			user, err := a.session.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return fail(f, err)
			}
			return render(f, user, func(w io.Writer) error {
				return view.Profile(w, a.t, user)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&lang, "language", "", "language preference (en|mr)")
	return cmd
}
