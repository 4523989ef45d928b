package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bhushansable/Gurukrupa-Mess/internal/service"
	"github.com/bhushansable/Gurukrupa-Mess/internal/view"
)

// NewHomeCommand creates the home command.
func NewHomeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "home",
		Short:         "Show today's menu and prices",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			today, err := a.menu.Today(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, today, func(w io.Writer) error {
				return view.Home(w, a.t, today)
			})
		},
	}
}

// NewMenuCommand creates the menu command and its weekly subcommand.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List menu items",
		Long: `List the available menu items. With --day, only the items served on
that day (daily items included).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			items, err := a.client.Menu(cmd.Context(), day)
			if err != nil {
				return fail(f, err)
			}
			title := a.t.T("menu")
			if day != "" {
				title = fmt.Sprintf("%s (%s)", title, a.t.T(day))
			}
			return render(f, items, func(w io.Writer) error {
				return view.Menu(w, a.t, title, items)
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "weekday or daily")

	cmd.AddCommand(&cobra.Command{
		Use:           "weekly",
		Short:         "Show the menu for every weekday",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			days, err := a.menu.Weekly(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, days, func(w io.Writer) error {
				return view.Weekly(w, a.t, days)
			})
		},
	})
	return cmd
}

// NewPlansCommand creates the plans command.
func NewPlansCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "plans",
		Short:         "List subscription plans",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			var (
				v   *service.PlansView
				err error
			)
			if a.session.IsAuthenticated() {
				v, err = a.subs.Load(cmd.Context())
			} else {
				v = &service.PlansView{}
				v.Plans, err = a.client.Plans(cmd.Context())
			}
			if err != nil {
				return fail(f, err)
			}
			return render(f, v, func(w io.Writer) error {
				return view.Plans(w, a.t, v.Plans, v.Subscriptions)
			})
		},
	}
}

// NewSubscribeCommand creates the subscribe command.
func NewSubscribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "subscribe <plan-id>",
		Short:         "Pay for a plan and start a subscription",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireUser(); err != nil {
				return fail(f, err)
			}
			res, err := a.subs.Subscribe(cmd.Context(), args[0])
			if err != nil {
				return fail(f, err)
			}
			return render(f, res, func(w io.Writer) error {
				fmt.Fprintln(w, a.t.T("success"))
				return view.Subscriptions(w, a.t, res.Subscriptions, false)
			})
		},
	}
}

// NewSubscriptionsCommand creates the subscriptions command.
func NewSubscriptionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "subscriptions",
		Short:         "List my subscriptions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireUser(); err != nil {
				return fail(f, err)
			}
			subs, err := a.client.MySubscriptions(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, subs, func(w io.Writer) error {
				return view.Subscriptions(w, a.t, subs, false)
			})
		},
	}
}

// NewSupportCommand creates the support command.
func NewSupportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "support",
		Short:         "Contact details and frequently asked questions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			data := map[string]any{
				"whatsapp": view.WhatsAppLink(),
				"call":     view.CallLink(),
				"email":    view.Email,
				"location": view.Location,
				"hours":    view.Hours,
				"faqs":     view.FAQs(),
			}
			return render(f, data, func(w io.Writer) error {
				return view.Support(w, a.t)
			})
		},
	}
}
