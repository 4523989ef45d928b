package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
	"github.com/bhushansable/Gurukrupa-Mess/internal/inflight"
)

// Fixed prices in rupees.
const (
	TiffinPrice = 80
	DineInPrice = 80
)

// Item names as they appear on orders.
const (
	TiffinItemName = "Lunch Tiffin"
	DineInItemName = "Dine-In Thali"
)

// Errors returned by the checkout flow.
var (
	ErrAddressRequired = errors.New("Please enter delivery address")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidGuests   = errors.New("guests must be at least 1")
	ErrInvalidMode     = errors.New("invalid checkout mode")
)

// Mode selects between a delivered tiffin and dine-in at the mess.
type Mode string

const (
	ModeDelivery Mode = "delivery"
	ModeDineIn   Mode = "dine_in"
)

// CheckoutRequest is the user's input on the checkout screen.
type CheckoutRequest struct {
	Mode    Mode
	Qty     int
	Guests  int
	Address string
	Notes   string
}

// Quote is the priced order before payment.
type Quote struct {
	Mode  Mode
	Items []api.OrderItem
	Total decimal.Decimal
}

// NewQuote prices a checkout request. Delivery is qty*TiffinPrice and
// dine-in is guests*DineInPrice.
func NewQuote(req CheckoutRequest) (Quote, error) {
	var item api.OrderItem
	switch req.Mode {
	case ModeDelivery, "":
		if req.Qty < 1 {
			return Quote{}, ErrInvalidQuantity
		}
		item = api.OrderItem{Name: TiffinItemName, Qty: req.Qty, Price: TiffinPrice}
		req.Mode = ModeDelivery
	case ModeDineIn:
		if req.Guests < 1 {
			return Quote{}, ErrInvalidGuests
		}
		item = api.OrderItem{Name: DineInItemName, Qty: req.Guests, Price: DineInPrice}
	default:
		return Quote{}, ErrInvalidMode
	}
	items := []api.OrderItem{item}
	return Quote{Mode: req.Mode, Items: items, Total: api.ItemsTotal(items)}, nil
}

// OrderRequest builds the create-order payload for the quote.
func (q Quote) OrderRequest(address, notes string) api.CreateOrderRequest {
	req := api.CreateOrderRequest{
		Items:     q.Items,
		Total:     q.Total.InexactFloat64(),
		OrderType: enum.OrderTypeSingle,
		Notes:     notes,
	}
	if q.Mode == ModeDineIn {
		req.OrderType = enum.OrderTypeDineIn
	} else {
		req.DeliveryAddress = address
	}
	return req
}

// CheckoutAPI defines the API calls needed by checkout.
// Satisfied by *api.Client; narrow interface for testability.
type CheckoutAPI interface {
	MockPayment(ctx context.Context, amount float64, orderID string) (*api.Payment, error)
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error)
}

// CheckoutService places single and dine-in orders.
type CheckoutService struct {
	api   CheckoutAPI
	guard *inflight.Guard
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(client CheckoutAPI, guard *inflight.Guard) *CheckoutService {
	return &CheckoutService{api: client, guard: guard}
}

// CheckoutResult is a confirmed payment and the order it paid for.
type CheckoutResult struct {
	Payment *api.Payment `json:"payment"`
	Order   *api.Order   `json:"order"`
	// Duplicate is true when this call joined a checkout already in flight.
	Duplicate bool `json:"duplicate"`
}

// PlaceOrder validates the request, takes the mock payment and creates the
// order. A concurrent call for the same order joins the one already running;
// a different order runs on its own.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	quote, err := NewQuote(req)
	if err != nil {
		return nil, err
	}
	address := strings.TrimSpace(req.Address)
	if quote.Mode == ModeDelivery && address == "" {
		return nil, ErrAddressRequired
	}
	orderReq := quote.OrderRequest(address, strings.TrimSpace(req.Notes))
	if err := orderReq.Validate(); err != nil {
		return nil, err
	}

	v, shared, err := s.guard.Do(checkoutKey(orderReq), func() (any, error) {
		payment, err := s.api.MockPayment(ctx, orderReq.Total, "")
		if err != nil {
			return nil, fmt.Errorf("payment: %w", err)
		}
		order, err := s.api.CreateOrder(ctx, orderReq)
		if err != nil {
			return nil, err
		}
		return &CheckoutResult{Payment: payment, Order: order}, nil
	})
	if err != nil {
		return nil, err
	}
	res := *v.(*CheckoutResult)
	res.Duplicate = shared
	return &res, nil
}

// checkoutKey identifies an order by everything the customer chose, so only
// repeated submissions of the same order share a guard slot.
func checkoutKey(req api.CreateOrderRequest) string {
	var qty int
	if len(req.Items) > 0 {
		qty = req.Items[0].Qty
	}
	return fmt.Sprintf("checkout:%s:%d:%q:%q", req.OrderType, qty, req.DeliveryAddress, req.Notes)
}
