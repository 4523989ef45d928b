package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
	"github.com/bhushansable/Gurukrupa-Mess/internal/service"
	"github.com/bhushansable/Gurukrupa-Mess/internal/view"
)

// NewAdminCommand creates the admin command group.
func NewAdminCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin console: orders, customers, menu and plans",
	}
	cmd.AddCommand(newAdminDashboardCommand(rootOpts))
	cmd.AddCommand(newAdminOrdersCommand(rootOpts))
	cmd.AddCommand(newAdminStatusCommand(rootOpts))
	cmd.AddCommand(newAdminCustomersCommand(rootOpts))
	cmd.AddCommand(newAdminSubscriptionsCommand(rootOpts))
	cmd.AddCommand(newAdminMenuCommand(rootOpts))
	cmd.AddCommand(newAdminPlansCommand(rootOpts))
	return cmd
}

// adminCommand builds a leaf admin command whose run only starts once the
// session is known to belong to an admin.
func adminCommand(rootOpts *RootOptions, use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireAdmin(); err != nil {
				return fail(f, err)
			}
			return run(cmd, args, a, f)
		},
	}
}

func newAdminDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return adminCommand(rootOpts, "dashboard", "Order, revenue and customer totals", cobra.NoArgs,
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			stats, err := a.client.Dashboard(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, stats, func(w io.Writer) error {
				return view.Dashboard(w, a.t, stats)
			})
		})
}

// parseFilter turns the --status flag into a filter; empty means all.
func parseFilter(raw string) (orderstatus.Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return "", nil
	}
	s := orderstatus.Status(raw)
	if !orderstatus.IsValid(s) {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

func newAdminOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	var status string
	cmd := adminCommand(rootOpts, "orders", "List every order, optionally by status", cobra.NoArgs,
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			filter, err := parseFilter(status)
			if err != nil {
				return fail(f, err)
			}
			orders, err := a.orders.List(cmd.Context(), filter)
			if err != nil {
				return fail(f, err)
			}
			return render(f, orders, func(w io.Writer) error {
				return view.AdminOrders(w, a.t, orders)
			})
		})
	cmd.Flags().StringVar(&status, "status", "", "only orders with this status (all|pending|preparing|out_for_delivery|delivered|cancelled)")
	return cmd
}

func newAdminStatusCommand(rootOpts *RootOptions) *cobra.Command {
	var status string
	cmd := adminCommand(rootOpts, "status <order-id> [<next-status>]", "Show or move an order to a later status", cobra.RangeArgs(1, 2),
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			filter, err := parseFilter(status)
			if err != nil {
				return fail(f, err)
			}

			if len(args) == 1 {
				order, err := a.client.Order(cmd.Context(), args[0])
				if err != nil {
					return fail(f, err)
				}
				options := a.orders.Options(*order)
				return render(f, options, func(w io.Writer) error {
					fmt.Fprintf(w, "%s: %s\n", a.t.T("order_status"), view.StatusLabel(a.t, order.Status))
					if len(options) == 0 {
						return nil
					}
					fmt.Fprintf(w, "%s:\n", a.t.T("next_status"))
					for _, s := range options {
						fmt.Fprintf(w, "  %s (%s)\n", s, service.StatusLabel(a.t, s))
					}
					return nil
				})
			}

			next := orderstatus.Status(strings.TrimSpace(args[1]))
			orders, err := a.orders.AdvanceByID(cmd.Context(), args[0], next, filter)
			if err != nil {
				return fail(f, err)
			}
			return render(f, orders, func(w io.Writer) error {
				fmt.Fprintln(w, a.t.T("success"))
				return view.AdminOrders(w, a.t, orders)
			})
		})
	cmd.Flags().StringVar(&status, "status", "", "status filter for the refreshed list")
	return cmd
}

func newAdminCustomersCommand(rootOpts *RootOptions) *cobra.Command {
	return adminCommand(rootOpts, "customers", "List registered customers", cobra.NoArgs,
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			users, err := a.client.Customers(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, users, func(w io.Writer) error {
				return view.Customers(w, a.t, users)
			})
		})
}

func newAdminSubscriptionsCommand(rootOpts *RootOptions) *cobra.Command {
	return adminCommand(rootOpts, "subscriptions", "List every subscription", cobra.NoArgs,
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			subs, err := a.client.AllSubscriptions(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, subs, func(w io.Writer) error {
				return view.Subscriptions(w, a.t, subs, true)
			})
		})
}

// --- Menu management ---

func newAdminMenuCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Add, change or remove menu items",
	}
	cmd.AddCommand(newAdminMenuAddCommand(rootOpts))
	cmd.AddCommand(newAdminMenuUpdateCommand(rootOpts))
	cmd.AddCommand(newAdminMenuDeleteCommand(rootOpts))
	return cmd
}

func menuItemFlags(cmd *cobra.Command, in *api.MenuItemInput) {
	cmd.Flags().StringVar(&in.NameEN, "name-en", "", "English name")
	cmd.Flags().StringVar(&in.NameMR, "name-mr", "", "Marathi name")
	cmd.Flags().StringVar(&in.DescriptionEN, "desc-en", "", "English description")
	cmd.Flags().StringVar(&in.DescriptionMR, "desc-mr", "", "Marathi description")
	cmd.Flags().StringVar(&in.Category, "category", "", "dal|roti|rice|sabzi|sweet|salad|extra")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "price in rupees")
	cmd.Flags().StringVar(&in.DayOfWeek, "day", "daily", "weekday or daily")
	cmd.Flags().BoolVar(&in.IsAvailable, "available", true, "offer the item")
	cmd.Flags().StringVar(&in.ImageURL, "image", "", "image URL")
}

func newAdminMenuAddCommand(rootOpts *RootOptions) *cobra.Command {
	var in api.MenuItemInput
	cmd := adminCommand(rootOpts, "add", "Add a menu item", cobra.NoArgs,
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			item, err := a.client.CreateMenuItem(cmd.Context(), in)
			if err != nil {
				return fail(f, err)
			}
			return render(f, item, func(w io.Writer) error {
				return view.Menu(w, a.t, a.t.T("manage_menu"), []api.MenuItem{*item})
			})
		})
	menuItemFlags(cmd, &in)
	return cmd
}

func newAdminMenuUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var in api.MenuItemInput
	cmd := adminCommand(rootOpts, "update <item-id>", "Change fields of a menu item", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			var patch api.MenuItemPatch
			flags := cmd.Flags()
			if flags.Changed("name-en") {
				patch.NameEN = &in.NameEN
			}
			if flags.Changed("name-mr") {
				patch.NameMR = &in.NameMR
			}
			if flags.Changed("desc-en") {
				patch.DescriptionEN = &in.DescriptionEN
			}
			if flags.Changed("desc-mr") {
				patch.DescriptionMR = &in.DescriptionMR
			}
			if flags.Changed("category") {
				patch.Category = &in.Category
			}
			if flags.Changed("price") {
				patch.Price = &in.Price
			}
			if flags.Changed("day") {
				patch.DayOfWeek = &in.DayOfWeek
			}
			if flags.Changed("available") {
				patch.IsAvailable = &in.IsAvailable
			}
			if flags.Changed("image") {
				patch.ImageURL = &in.ImageURL
			}

			item, err := a.client.UpdateMenuItem(cmd.Context(), args[0], patch)
			if err != nil {
				return fail(f, err)
			}
			return render(f, item, func(w io.Writer) error {
				return view.Menu(w, a.t, a.t.T("manage_menu"), []api.MenuItem{*item})
			})
		})
	menuItemFlags(cmd, &in)
	return cmd
}

func newAdminMenuDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return adminCommand(rootOpts, "delete <item-id>", "Remove a menu item", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			if err := a.client.DeleteMenuItem(cmd.Context(), args[0]); err != nil {
				return fail(f, err)
			}
			return f.Success("Deleted", map[string]string{"id": args[0]})
		})
}

// --- Plan management ---

func newAdminPlansCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage subscription plans",
	}
	cmd.AddCommand(newAdminPlansAddCommand(rootOpts))
	cmd.AddCommand(newAdminPlansUpdateCommand(rootOpts))
	return cmd
}

func planFlags(cmd *cobra.Command, in *api.PlanInput) {
	cmd.Flags().StringVar(&in.NameEN, "name-en", "", "English name")
	cmd.Flags().StringVar(&in.NameMR, "name-mr", "", "Marathi name")
	cmd.Flags().StringVar(&in.DescriptionEN, "desc-en", "", "English description")
	cmd.Flags().StringVar(&in.DescriptionMR, "desc-mr", "", "Marathi description")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "price in rupees")
	cmd.Flags().IntVar(&in.DurationDays, "duration", 30, "length in days")
	cmd.Flags().IntVar(&in.MealsPerDay, "meals", 1, "meals per day")
	cmd.Flags().BoolVar(&in.IsActive, "active", true, "offer the plan")
}

func newAdminPlansAddCommand(rootOpts *RootOptions) *cobra.Command {
	var in api.PlanInput
	cmd := adminCommand(rootOpts, "add", "Add a subscription plan", cobra.NoArgs,
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			plan, err := a.client.CreatePlan(cmd.Context(), in)
			if err != nil {
				return fail(f, err)
			}
			return render(f, plan, func(w io.Writer) error {
				return view.Plans(w, a.t, []api.Plan{*plan}, nil)
			})
		})
	planFlags(cmd, &in)
	return cmd
}

func newAdminPlansUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var in api.PlanInput
	cmd := adminCommand(rootOpts, "update <plan-id>", "Change fields of a subscription plan", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string, a *app, f *OutputFormatter) error {
			var patch api.PlanPatch
			flags := cmd.Flags()
			if flags.Changed("name-en") {
				patch.NameEN = &in.NameEN
			}
			if flags.Changed("name-mr") {
				patch.NameMR = &in.NameMR
			}
			if flags.Changed("desc-en") {
				patch.DescriptionEN = &in.DescriptionEN
			}
			if flags.Changed("desc-mr") {
				patch.DescriptionMR = &in.DescriptionMR
			}
			if flags.Changed("price") {
				patch.Price = &in.Price
			}
			if flags.Changed("duration") {
				patch.DurationDays = &in.DurationDays
			}
			if flags.Changed("meals") {
				patch.MealsPerDay = &in.MealsPerDay
			}
			if flags.Changed("active") {
				patch.IsActive = &in.IsActive
			}

			plan, err := a.client.UpdatePlan(cmd.Context(), args[0], patch)
			if err != nil {
				return fail(f, err)
			}
			return render(f, plan, func(w io.Writer) error {
				return view.Plans(w, a.t, []api.Plan{*plan}, nil)
			})
		})
	planFlags(cmd, &in)
	return cmd
}
