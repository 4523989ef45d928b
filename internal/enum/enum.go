package enum

import "time"

// ── Group A: State machines ──

const (
	OrderStatusPending        = "pending"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusExpired   = "expired"
	SubscriptionStatusCancelled = "cancelled"
)

const (
	PaymentStatusPaid     = "paid"
	PaymentStatusCaptured = "captured"
)

// ── Group B: Roles and order types ──

const (
	UserRoleCustomer = "customer"
	UserRoleAdmin    = "admin"
)

const (
	OrderTypeSingle       = "single"
	OrderTypeDineIn       = "dine_in"
	OrderTypeSubscription = "subscription"
)

// ── Group C: Menu labels ──

const (
	CategoryDal   = "dal"
	CategoryRoti  = "roti"
	CategoryRice  = "rice"
	CategorySabzi = "sabzi"
	CategorySweet = "sweet"
	CategorySalad = "salad"
	CategoryExtra = "extra"
)

const (
	DayDaily     = "daily"
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
	DaySunday    = "sunday"
)

const (
	LangEnglish = "en"
	LangMarathi = "mr"
)

var categories = []string{
	CategoryDal, CategoryRoti, CategoryRice, CategorySabzi,
	CategorySweet, CategorySalad, CategoryExtra,
}

var weekdays = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// Categories returns the menu categories in display order.
func Categories() []string {
	return append([]string(nil), categories...)
}

// Weekdays returns monday..sunday in display order.
func Weekdays() []string {
	return append([]string(nil), weekdays...)
}

func IsValidCategory(s string) bool {
	for _, c := range categories {
		if c == s {
			return true
		}
	}
	return false
}

// IsValidDay accepts "daily" as well as the seven weekdays.
func IsValidDay(s string) bool {
	if s == DayDaily {
		return true
	}
	for _, d := range weekdays {
		if d == s {
			return true
		}
	}
	return false
}

func IsValidOrderType(s string) bool {
	switch s {
	case OrderTypeSingle, OrderTypeDineIn, OrderTypeSubscription:
		return true
	}
	return false
}

func IsValidRole(s string) bool {
	return s == UserRoleCustomer || s == UserRoleAdmin
}

// DayOf returns the lowercase weekday name of t.
func DayOf(t time.Time) string {
	// time.Weekday starts at Sunday.
	return weekdays[(int(t.Weekday())+6)%7]
}
