package api

import (
	"github.com/shopspring/decimal"

	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
	"github.com/bhushansable/Gurukrupa-Mess/internal/orderstatus"
)

// --- Auth ---

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	LanguagePref string `json:"language_pref"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user may use the admin console.
func (u User) IsAdmin() bool {
	return u.Role == enum.UserRoleAdmin
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
}

func (r RegisterRequest) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"password", r.Password},
	} {
		if err := required(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if err := required("email", r.Email); err != nil {
		return err
	}
	return required("password", r.Password)
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	LanguagePref *string `json:"language_pref,omitempty"`
}

func (p ProfileUpdate) Validate() error {
	if p.LanguagePref != nil && *p.LanguagePref != enum.LangEnglish && *p.LanguagePref != enum.LangMarathi {
		return &ValidationError{Field: "language_pref", Message: "must be en or mr"}
	}
	if p.Name != nil {
		return required("name", *p.Name)
	}
	return nil
}

// --- Menu ---

type MenuItem struct {
	ID            string  `json:"id"`
	NameEN        string  `json:"name_en"`
	NameMR        string  `json:"name_mr"`
	DescriptionEN string  `json:"description_en"`
	DescriptionMR string  `json:"description_mr"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	DayOfWeek     string  `json:"day_of_week"`
	IsAvailable   bool    `json:"is_available"`
	ImageURL      string  `json:"image_url"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// WeeklyMenu maps monday..sunday to the items served that day.
type WeeklyMenu map[string][]MenuItem

type MenuItemInput struct {
	NameEN        string  `json:"name_en"`
	NameMR        string  `json:"name_mr"`
	DescriptionEN string  `json:"description_en"`
	DescriptionMR string  `json:"description_mr"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	DayOfWeek     string  `json:"day_of_week"`
	IsAvailable   bool    `json:"is_available"`
	ImageURL      string  `json:"image_url"`
}

func (m MenuItemInput) Validate() error {
	if err := required("name_en", m.NameEN); err != nil {
		return err
	}
	if err := required("name_mr", m.NameMR); err != nil {
		return err
	}
	if !enum.IsValidCategory(m.Category) {
		return &ValidationError{Field: "category", Message: "is not a menu category"}
	}
	if !enum.IsValidDay(m.DayOfWeek) {
		return &ValidationError{Field: "day_of_week", Message: "must be daily or a weekday"}
	}
	if m.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

// MenuItemPatch is a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	NameEN        *string  `json:"name_en,omitempty"`
	NameMR        *string  `json:"name_mr,omitempty"`
	DescriptionEN *string  `json:"description_en,omitempty"`
	DescriptionMR *string  `json:"description_mr,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	DayOfWeek     *string  `json:"day_of_week,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

func (p MenuItemPatch) Validate() error {
	if p == (MenuItemPatch{}) {
		return &ValidationError{Message: "no fields to update"}
	}
	if p.Category != nil && !enum.IsValidCategory(*p.Category) {
		return &ValidationError{Field: "category", Message: "is not a menu category"}
	}
	if p.DayOfWeek != nil && !enum.IsValidDay(*p.DayOfWeek) {
		return &ValidationError{Field: "day_of_week", Message: "must be daily or a weekday"}
	}
	if p.Price != nil && *p.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}

// --- Plans ---

type Plan struct {
	ID            string  `json:"id"`
	NameEN        string  `json:"name_en"`
	NameMR        string  `json:"name_mr"`
	DescriptionEN string  `json:"description_en"`
	DescriptionMR string  `json:"description_mr"`
	Price         float64 `json:"price"`
	DurationDays  int     `json:"duration_days"`
	MealsPerDay   int     `json:"meals_per_day"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type PlanInput struct {
	NameEN        string  `json:"name_en"`
	NameMR        string  `json:"name_mr"`
	DescriptionEN string  `json:"description_en"`
	DescriptionMR string  `json:"description_mr"`
	Price         float64 `json:"price"`
	DurationDays  int     `json:"duration_days"`
	MealsPerDay   int     `json:"meals_per_day"`
	IsActive      bool    `json:"is_active"`
}

func (p PlanInput) Validate() error {
	if err := required("name_en", p.NameEN); err != nil {
		return err
	}
	if err := required("name_mr", p.NameMR); err != nil {
		return err
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	if p.DurationDays <= 0 {
		return &ValidationError{Field: "duration_days", Message: "must be > 0"}
	}
	if p.MealsPerDay <= 0 {
		return &ValidationError{Field: "meals_per_day", Message: "must be > 0"}
	}
	return nil
}

// PlanPatch is a partial update; nil fields are left untouched.
type PlanPatch struct {
	NameEN        *string  `json:"name_en,omitempty"`
	NameMR        *string  `json:"name_mr,omitempty"`
	DescriptionEN *string  `json:"description_en,omitempty"`
	DescriptionMR *string  `json:"description_mr,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	DurationDays  *int     `json:"duration_days,omitempty"`
	MealsPerDay   *int     `json:"meals_per_day,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (p PlanPatch) Validate() error {
	if p == (PlanPatch{}) {
		return &ValidationError{Message: "no fields to update"}
	}
	if p.NameEN != nil {
		if err := required("name_en", *p.NameEN); err != nil {
			return err
		}
	}
	if p.NameMR != nil {
		if err := required("name_mr", *p.NameMR); err != nil {
			return err
		}
	}
	if p.Price != nil && *p.Price < 0 {
		return &ValidationError{Field: "price", Message: "must not be negative"}
	}
	if p.DurationDays != nil && *p.DurationDays <= 0 {
		return &ValidationError{Field: "duration_days", Message: "must be > 0"}
	}
	if p.MealsPerDay != nil && *p.MealsPerDay <= 0 {
		return &ValidationError{Field: "meals_per_day", Message: "must be > 0"}
	}
	return nil
}

// --- Orders ---

type OrderItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// LineTotal returns qty*price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Qty)))
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	UserName        string      `json:"user_name"`
	UserPhone       string      `json:"user_phone"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	OrderType       string      `json:"order_type"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           string      `json:"notes"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

// CurrentStatus returns the parsed status; an absent status is pending.
func (o Order) CurrentStatus() orderstatus.Status {
	return orderstatus.Parse(o.Status)
}

// ItemsTotal sums qty*price over the order's items.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

type CreateOrderRequest struct {
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	OrderType       string      `json:"order_type"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           string      `json:"notes"`
}

// Validate checks the request before submission, including that total
// equals the sum of qty*price over items.
func (r CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "are required"}
	}
	for _, it := range r.Items {
		if err := required("item name", it.Name); err != nil {
			return err
		}
		if it.Qty <= 0 {
			return &ValidationError{Field: "qty", Message: "must be > 0"}
		}
		if it.Price < 0 {
			return &ValidationError{Field: "price", Message: "must not be negative"}
		}
	}
	if !enum.IsValidOrderType(r.OrderType) {
		return &ValidationError{Field: "order_type", Message: "must be single, dine_in or subscription"}
	}
	if r.OrderType == enum.OrderTypeSingle {
		if err := required("delivery_address", r.DeliveryAddress); err != nil {
			return err
		}
	}
	if !ItemsTotal(r.Items).Equal(decimal.NewFromFloat(r.Total)) {
		return &ValidationError{Field: "total", Message: "does not match items"}
	}
	return nil
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// --- Subscriptions ---

type Subscription struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	PlanID        string  `json:"plan_id"`
	PlanNameEN    string  `json:"plan_name_en"`
	PlanNameMR    string  `json:"plan_name_mr"`
	Price         float64 `json:"price"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

// IsActive reports whether the subscription is currently running.
func (s Subscription) IsActive() bool {
	return s.Status == enum.SubscriptionStatusActive
}

type subscriptionRequest struct {
	PlanID string `json:"plan_id"`
}

// --- Admin ---

type DashboardStats struct {
	TotalOrders         int     `json:"total_orders"`
	PendingOrders       int     `json:"pending_orders"`
	PreparingOrders     int     `json:"preparing_orders"`
	DeliveredOrders     int     `json:"delivered_orders"`
	TotalCustomers      int     `json:"total_customers"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	TotalRevenue        float64 `json:"total_revenue"`
	TodayOrders         int     `json:"today_orders"`
}

// --- Payment ---

type PaymentRequest struct {
	Amount  float64 `json:"amount"`
	OrderID string  `json:"order_id,omitempty"`
}

type Payment struct {
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	Method    string  `json:"method"`
}

// --- Misc ---

type Message struct {
	Message string `json:"message"`
}

type SeedResult struct {
	Message          string `json:"message"`
	AdminEmail       string `json:"admin_email,omitempty"`
	AdminPassword    string `json:"admin_password,omitempty"`
	CustomerEmail    string `json:"customer_email,omitempty"`
	CustomerPassword string `json:"customer_password,omitempty"`
}
