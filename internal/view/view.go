// Package view renders screens as plain text for the terminal front end.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/i18n"
	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
	"github.com/bhushansable/Gurukrupa-Mess/internal/service"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))
}

// Rupees formats an amount as "₹80" or "₹80.50".
func Rupees(amount float64) string {
	d := decimal.NewFromFloat(amount)
	if d.Equal(d.Truncate(0)) {
		return "₹" + d.StringFixed(0)
	}
	return "₹" + d.StringFixed(2)
}

// StatusLabel is the translated status with its badge, e.g. "Pending [warning/time]".
func StatusLabel(t *i18n.Translator, raw string) string {
	s := orderstatus.Parse(raw)
	b := orderstatus.BadgeFor(s)
	return fmt.Sprintf("%s [%s/%s]", t.T(s.String()), b.Color, b.Icon)
}

// Menu renders a list of menu items.
func Menu(w io.Writer, t *i18n.Translator, title string, items []api.MenuItem) error {
	heading(w, title)
	if len(items) == 0 {
		fmt.Fprintln(w, t.T("no_menu_items"))
		return nil
	}
	tw := newTable(w)
	for _, it := range items {
		avail := ""
		if !it.IsAvailable {
			avail = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\n", it.ID, t.Pick(it.NameEN, it.NameMR), it.Category, t.T(it.DayOfWeek), avail)
	}
	return tw.Flush()
}

// Home renders today's menu split into daily items and specials.
func Home(w io.Writer, t *i18n.Translator, today *service.TodayMenu) error {
	heading(w, t.T("welcome")+" "+t.T("gurukrupa_mess"))
	fmt.Fprintln(w, t.T("ghar_ka_swad"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%s)\n", t.T("todays_menu"), t.T(today.Day))
	section := func(key string, items []api.MenuItem) {
		fmt.Fprintf(w, "\n%s:\n", t.T(key))
		for _, it := range items {
			fmt.Fprintf(w, "  - %s\n", t.Pick(it.NameEN, it.NameMR))
		}
	}
	section("daily_items", today.Daily)
	if len(today.Specials) > 0 {
		section("special_today", today.Specials)
	}
	fmt.Fprintf(w, "\n%s: %s\n", t.T("single_tiffin"), Rupees(service.TiffinPrice))
	fmt.Fprintf(w, "%s: %s\n", t.T("dine_in"), Rupees(service.DineInPrice))
	return nil
}

// Weekly renders the weekly menu, one block per weekday.
func Weekly(w io.Writer, t *i18n.Translator, days []service.DayMenu) error {
	heading(w, t.T("weekly_menu"))
	for _, d := range days {
		fmt.Fprintf(w, "\n%s\n", t.T(d.Day))
		if len(d.Items) == 0 {
			fmt.Fprintf(w, "  %s\n", t.T("no_menu_items"))
			continue
		}
		for _, it := range d.Items {
			fmt.Fprintf(w, "  - %s (%s)\n", t.Pick(it.NameEN, it.NameMR), it.Category)
		}
	}
	return nil
}

// Plans renders the subscription plans and marks the ones the user holds.
func Plans(w io.Writer, t *i18n.Translator, plans []api.Plan, subs []api.Subscription) error {
	heading(w, t.T("subscription_plans"))
	active := make(map[string]bool, len(subs))
	for _, s := range subs {
		if s.IsActive() {
			active[s.PlanID] = true
		}
	}
	tw := newTable(w)
	for _, p := range plans {
		mark := ""
		if active[p.ID] {
			mark = t.T("active")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%d %s\t%d %s\t%s\n",
			p.ID, t.Pick(p.NameEN, p.NameMR), Rupees(p.Price), t.T("per_month"),
			p.DurationDays, t.T("days"), p.MealsPerDay, t.T("meals_day"), mark)
	}
	return tw.Flush()
}

// Subscriptions renders a subscription list. Admin lists include the user name.
func Subscriptions(w io.Writer, t *i18n.Translator, subs []api.Subscription, withUser bool) error {
	heading(w, t.T("my_subscriptions"))
	if len(subs) == 0 {
		fmt.Fprintln(w, t.T("no_subscriptions"))
		return nil
	}
	tw := newTable(w)
	for _, s := range subs {
		row := []string{t.Pick(s.PlanNameEN, s.PlanNameMR), Rupees(s.Price), s.StartDate + " → " + s.EndDate, t.T(s.Status)}
		if withUser {
			row = append([]string{s.UserName}, row...)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// History renders the customer's order list with a badge per order.
func History(w io.Writer, t *i18n.Translator, orders []api.Order) error {
	heading(w, t.T("order_history"))
	if len(orders) == 0 {
		fmt.Fprintln(w, t.T("no_orders"))
		return nil
	}
	tw := newTable(w)
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.CreatedAt, t.T(o.OrderType), Rupees(o.Total), StatusLabel(t, o.Status))
	}
	return tw.Flush()
}

// OrderDetail renders an order with its delivery tracker. Cancelled orders
// show a banner instead of a highlighted step.
func OrderDetail(w io.Writer, t *i18n.Translator, o *api.Order) error {
	heading(w, t.T("order_status"))
	fmt.Fprintf(w, "%s  %s\n", o.ID, o.CreatedAt)

	tr := orderstatus.TrackerFor(o.CurrentStatus())
	if tr.Cancelled {
		fmt.Fprintf(w, "\n!! %s\n", t.T("order_cancelled"))
	}
	fmt.Fprintln(w)
	for _, st := range tr.Steps {
		mark := "[ ]"
		if st.Reached {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, t.T(st.Status.String()))
		if st.Current {
			line += "  <- " + t.T("current")
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\n%s:\n", t.T("items"))
	tw := newTable(w)
	for _, it := range o.Items {
		fmt.Fprintf(tw, "  %s\tx%d\t%s\n", it.Name, it.Qty, Rupees(it.LineTotal().InexactFloat64()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", t.T("total"), Rupees(o.Total))
	if o.DeliveryAddress != "" {
		fmt.Fprintf(w, "%s: %s\n", t.T("address"), o.DeliveryAddress)
	}
	if o.Notes != "" {
		fmt.Fprintf(w, "%s: %s\n", t.T("special_notes"), o.Notes)
	}
	return nil
}

// AdminOrders renders the admin order list with the statuses each order can move to.
func AdminOrders(w io.Writer, t *i18n.Translator, orders []api.Order) error {
	heading(w, t.T("manage_orders"))
	if len(orders) == 0 {
		fmt.Fprintln(w, t.T("no_orders"))
		return nil
	}
	tw := newTable(w)
	for _, o := range orders {
		next := orderstatus.NextOptions(o.CurrentStatus())
		labels := make([]string, len(next))
		for i, s := range next {
			labels[i] = s.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.UserName, o.UserPhone, Rupees(o.Total), StatusLabel(t, o.Status), strings.Join(labels, ","))
	}
	return tw.Flush()
}

// Dashboard renders the admin aggregates.
func Dashboard(w io.Writer, t *i18n.Translator, d *api.DashboardStats) error {
	heading(w, t.T("dashboard"))
	tw := newTable(w)
	rows := []struct {
		key   string
		value string
	}{
		{"total_orders", fmt.Sprint(d.TotalOrders)},
		{"today_orders", fmt.Sprint(d.TodayOrders)},
		{"pending_orders", fmt.Sprint(d.PendingOrders)},
		{"preparing_orders", fmt.Sprint(d.PreparingOrders)},
		{"delivered_orders", fmt.Sprint(d.DeliveredOrders)},
		{"total_customers", fmt.Sprint(d.TotalCustomers)},
		{"active_subscriptions", fmt.Sprint(d.ActiveSubscriptions)},
		{"total_revenue", Rupees(d.TotalRevenue)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", t.T(r.key), r.value)
	}
	return tw.Flush()
}

// Customers renders the admin customer list.
func Customers(w io.Writer, t *i18n.Translator, users []api.User) error {
	heading(w, t.T("customers"))
	if len(users) == 0 {
		fmt.Fprintln(w, t.T("no_customers"))
		return nil
	}
	tw := newTable(w)
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Name, u.Email, u.Phone, u.Address)
	}
	return tw.Flush()
}

// Profile renders the signed-in user.
func Profile(w io.Writer, t *i18n.Translator, u *api.User) error {
	heading(w, t.T("profile"))
	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\n", t.T("name"), u.Name)
	fmt.Fprintf(tw, "%s\t%s\n", t.T("email"), u.Email)
	fmt.Fprintf(tw, "%s\t%s\n", t.T("phone"), u.Phone)
	fmt.Fprintf(tw, "%s\t%s\n", t.T("address"), u.Address)
	fmt.Fprintf(tw, "%s\t%s\n", t.T("language"), u.LanguagePref)
	if u.IsAdmin() {
		fmt.Fprintf(tw, "\t%s\n", t.T("admin_panel"))
	}
	return tw.Flush()
}

// Receipt renders a confirmed checkout.
func Receipt(w io.Writer, t *i18n.Translator, res *service.CheckoutResult) error {
	fmt.Fprintln(w, t.T("payment_success"))
	fmt.Fprintf(w, "%s  %s\n", res.Payment.PaymentID, Rupees(res.Payment.Amount))
	fmt.Fprintf(w, "%s: %s\n", t.T("my_orders"), res.Order.ID)
	return nil
}
