package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/service"
	"github.com/bhushansable/Gurukrupa-Mess/internal/view"
)

// NewCheckoutCommand creates the checkout command.
func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		req    service.CheckoutRequest
		dineIn bool
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for and place a tiffin or dine-in order",
		Long: `Place an order at the fixed price of ₹80 per tiffin or per dine-in guest.
Delivery goes to --address, or to the address on your profile.`,
		Example: `  tiffin checkout --qty 2
  tiffin checkout --qty 1 --address "12 MG Road, Pune" --notes "less spicy"
  tiffin checkout --dine-in --guests 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireUser(); err != nil {
				return fail(f, err)
			}

			req.Mode = service.ModeDelivery
			if dineIn {
				req.Mode = service.ModeDineIn
			} else if !cmd.Flags().Changed("address") {
				req.Address = a.session.User().Address
			}
			if quote, err := service.NewQuote(req); err == nil {
				f.VerboseLog("%s: %s", a.t.T("total"), view.Rupees(quote.Total.InexactFloat64()))
			}

			res, err := a.checkout.PlaceOrder(cmd.Context(), req)
			if err != nil {
				return fail(f, err)
			}
			return render(f, res, func(w io.Writer) error {
				return view.Receipt(w, a.t, res)
			})
		},
	}
	cmd.Flags().IntVar(&req.Qty, "qty", 1, "number of tiffins")
	cmd.Flags().StringVar(&req.Address, "address", "", "delivery address (defaults to your profile address)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "special instructions")
	cmd.Flags().BoolVar(&dineIn, "dine-in", false, "eat at the mess instead of delivery")
	cmd.Flags().IntVar(&req.Guests, "guests", 1, "number of dine-in guests")
	cmd.MarkFlagsMutuallyExclusive("dine-in", "qty")
	cmd.MarkFlagsMutuallyExclusive("dine-in", "address")
	return cmd
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "orders",
		Short:         "List my orders, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireUser(); err != nil {
				return fail(f, err)
			}
			orders, err := a.client.MyOrders(cmd.Context())
			if err != nil {
				return fail(f, err)
			}
			return render(f, orders, func(w io.Writer) error {
				return view.History(w, a.t, orders)
			})
		},
	}
}

// NewOrderCommand creates the order command.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "order <id>",
		Short:         "Track one order",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, f := rootOpts.app, newFormatter(rootOpts, cmd)
			if err := a.requireUser(); err != nil {
				return fail(f, err)
			}
			order, err := a.client.Order(cmd.Context(), args[0])
			if api.IsNotFound(err) {
				return fail(f, errors.New(a.t.T("order_not_found")))
			}
			if err != nil {
				return fail(f, err)
			}
			return render(f, order, func(w io.Writer) error {
				return view.OrderDetail(w, a.t, order)
			})
		},
	}
}
