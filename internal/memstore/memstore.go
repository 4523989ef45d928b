// Package memstore is the in-memory state behind the fake backend.
package memstore

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// TimeLayout is fixed-width so timestamps sort lexically.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

// User is a stored account. PasswordHash never leaves the store's callers.
type User struct {
	api.User
	PasswordHash string
}

// Store holds every collection behind one lock.
type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	users         []User
	menu          []api.MenuItem
	plans         []api.Plan
	orders        []api.Order
	subscriptions []api.Subscription
}

func New() *Store {
	return &Store{now: time.Now}
}

// WithClock replaces the store's clock.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) stamp() string {
	return s.now().UTC().Format(TimeLayout)
}

// --- Users ---

// CreateUser stores u with a fresh id. Emails are unique.
func (s *Store) CreateUser(_ context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return User{}, ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = s.stamp()
	if u.Role == "" {
		u.Role = enum.UserRoleCustomer
	}
	if u.LanguagePref == "" {
		u.LanguagePref = enum.LangEnglish
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// UpdateUser applies the non-nil fields of p.
func (s *Store) UpdateUser(_ context.Context, id string, p api.ProfileUpdate) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		u := &s.users[i]
		if u.ID != id {
			continue
		}
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Phone != nil {
			u.Phone = *p.Phone
		}
		if p.Address != nil {
			u.Address = *p.Address
		}
		if p.LanguagePref != nil {
			u.LanguagePref = *p.LanguagePref
		}
		return *u, nil
	}
	return User{}, ErrNotFound
}

// Customers returns every user with the customer role.
func (s *Store) Customers(_ context.Context) ([]api.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []api.User{}
	for _, u := range s.users {
		if u.Role == enum.UserRoleCustomer {
			out = append(out, u.User)
		}
	}
	return out, nil
}

// --- Menu ---

// MenuItems returns available items. A non-empty day keeps that day's
// items and the ones served daily.
func (s *Store) MenuItems(_ context.Context, day string) ([]api.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	day = strings.ToLower(day)
	out := []api.MenuItem{}
	for _, it := range s.menu {
		if !it.IsAvailable {
			continue
		}
		if day != "" && it.DayOfWeek != day && it.DayOfWeek != enum.DayDaily {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// WeeklyMenu maps each weekday to its items plus the daily ones.
func (s *Store) WeeklyMenu(ctx context.Context) (api.WeeklyMenu, error) {
	items, err := s.MenuItems(ctx, "")
	if err != nil {
		return nil, err
	}
	weekly := make(api.WeeklyMenu, 7)
	for _, day := range enum.Weekdays() {
		weekly[day] = []api.MenuItem{}
		for _, it := range items {
			if it.DayOfWeek == day || it.DayOfWeek == enum.DayDaily {
				weekly[day] = append(weekly[day], it)
			}
		}
	}
	return weekly, nil
}

func (s *Store) CreateMenuItem(_ context.Context, in api.MenuItemInput) (api.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := api.MenuItem{
		ID:            uuid.NewString(),
		NameEN:        in.NameEN,
		NameMR:        in.NameMR,
		DescriptionEN: in.DescriptionEN,
		DescriptionMR: in.DescriptionMR,
		Category:      in.Category,
		Price:         in.Price,
		DayOfWeek:     in.DayOfWeek,
		IsAvailable:   in.IsAvailable,
		ImageURL:      in.ImageURL,
		CreatedAt:     s.stamp(),
	}
	s.menu = append(s.menu, it)
	return it, nil
}

// UpdateMenuItem applies the non-nil fields of p.
func (s *Store) UpdateMenuItem(_ context.Context, id string, p api.MenuItemPatch) (api.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		it := &s.menu[i]
		if it.ID != id {
			continue
		}
		setString(&it.NameEN, p.NameEN)
		setString(&it.NameMR, p.NameMR)
		setString(&it.DescriptionEN, p.DescriptionEN)
		setString(&it.DescriptionMR, p.DescriptionMR)
		setString(&it.Category, p.Category)
		setString(&it.DayOfWeek, p.DayOfWeek)
		setString(&it.ImageURL, p.ImageURL)
		if p.Price != nil {
			it.Price = *p.Price
		}
		if p.IsAvailable != nil {
			it.IsAvailable = *p.IsAvailable
		}
		return *it, nil
	}
	return api.MenuItem{}, ErrNotFound
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func (s *Store) DeleteMenuItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.menu {
		if it.ID == id {
			s.menu = slices.Delete(s.menu, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

// --- Plans ---

// Plans returns the active plans.
func (s *Store) Plans(_ context.Context) ([]api.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []api.Plan{}
	for _, p := range s.plans {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) PlanByID(_ context.Context, id string) (api.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return api.Plan{}, ErrNotFound
}

func (s *Store) CreatePlan(_ context.Context, in api.PlanInput) (api.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := planFromInput(in)
	p.ID = uuid.NewString()
	p.CreatedAt = s.stamp()
	s.plans = append(s.plans, p)
	return p, nil
}

// UpdatePlan applies the non-nil fields of p.
func (s *Store) UpdatePlan(_ context.Context, id string, p api.PlanPatch) (api.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plans {
		pl := &s.plans[i]
		if pl.ID != id {
			continue
		}
		setString(&pl.NameEN, p.NameEN)
		setString(&pl.NameMR, p.NameMR)
		setString(&pl.DescriptionEN, p.DescriptionEN)
		setString(&pl.DescriptionMR, p.DescriptionMR)
		if p.Price != nil {
			pl.Price = *p.Price
		}
		if p.DurationDays != nil {
			pl.DurationDays = *p.DurationDays
		}
		if p.MealsPerDay != nil {
			pl.MealsPerDay = *p.MealsPerDay
		}
		if p.IsActive != nil {
			pl.IsActive = *p.IsActive
		}
		return *pl, nil
	}
	return api.Plan{}, ErrNotFound
}

func planFromInput(in api.PlanInput) api.Plan {
	return api.Plan{
		NameEN:        in.NameEN,
		NameMR:        in.NameMR,
		DescriptionEN: in.DescriptionEN,
		DescriptionMR: in.DescriptionMR,
		Price:         in.Price,
		DurationDays:  in.DurationDays,
		MealsPerDay:   in.MealsPerDay,
		IsActive:      in.IsActive,
	}
}

// --- Orders ---

// CreateOrder stores o as a new paid order. Status always starts at pending.
func (s *Store) CreateOrder(_ context.Context, o api.Order) (api.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	o.ID = uuid.NewString()
	o.Status = enum.OrderStatusPending
	o.PaymentStatus = enum.PaymentStatusPaid
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.OrderType == "" {
		o.OrderType = enum.OrderTypeSingle
	}
	s.orders = append(s.orders, o)
	return o, nil
}

// Orders returns orders newest first. Empty userID and status match all.
func (s *Store) Orders(_ context.Context, userID, status string) ([]api.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []api.Order{}
	for _, o := range s.orders {
		if userID != "" && o.UserID != userID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	slices.SortStableFunc(out, func(a, b api.Order) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out, nil
}

func (s *Store) OrderByID(_ context.Context, id string) (api.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return api.Order{}, ErrNotFound
}

func (s *Store) UpdateOrderStatus(_ context.Context, id, status string) (api.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = s.stamp()
			return s.orders[i], nil
		}
	}
	return api.Order{}, ErrNotFound
}

// --- Subscriptions ---

// CreateSubscription starts an active, paid subscription to plan for user today.
func (s *Store) CreateSubscription(_ context.Context, user api.User, plan api.Plan) (api.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := s.now().UTC()
	sub := api.Subscription{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		UserName:      user.Name,
		PlanID:        plan.ID,
		PlanNameEN:    plan.NameEN,
		PlanNameMR:    plan.NameMR,
		Price:         plan.Price,
		StartDate:     start.Format(TimeLayout),
		EndDate:       start.AddDate(0, 0, plan.DurationDays).Format(TimeLayout),
		Status:        enum.SubscriptionStatusActive,
		PaymentStatus: enum.PaymentStatusPaid,
		CreatedAt:     start.Format(TimeLayout),
	}
	s.subscriptions = append(s.subscriptions, sub)
	return sub, nil
}

// Subscriptions returns subscriptions newest first. Empty userID matches all.
func (s *Store) Subscriptions(_ context.Context, userID string) ([]api.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []api.Subscription{}
	for _, sub := range s.subscriptions {
		if userID == "" || sub.UserID == userID {
			out = append(out, sub)
		}
	}
	slices.SortStableFunc(out, func(a, b api.Subscription) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out, nil
}

// --- Admin ---

// Dashboard aggregates counts and revenue across every collection.
func (s *Store) Dashboard(_ context.Context) (api.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(TimeLayout)

	var stats api.DashboardStats
	revenue := decimal.Zero
	for _, o := range s.orders {
		stats.TotalOrders++
		switch o.Status {
		case enum.OrderStatusPending:
			stats.PendingOrders++
		case enum.OrderStatusPreparing:
			stats.PreparingOrders++
		case enum.OrderStatusDelivered:
			stats.DeliveredOrders++
		}
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		if o.CreatedAt >= todayStart {
			stats.TodayOrders++
		}
	}
	for _, u := range s.users {
		if u.Role == enum.UserRoleCustomer {
			stats.TotalCustomers++
		}
	}
	for _, sub := range s.subscriptions {
		if sub.Status == enum.SubscriptionStatusActive {
			stats.ActiveSubscriptions++
		}
	}
	stats.TotalRevenue = revenue.InexactFloat64()
	return stats, nil
}
