// Package orderstatus models the order lifecycle shared by the customer
// history list, the order tracker and the admin status-update flow.
package orderstatus

import (
	"strings"

	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// Status is an order status as reported by the backend.
type Status string

const (
	Pending        Status = enum.OrderStatusPending
	Preparing      Status = enum.OrderStatusPreparing
	OutForDelivery Status = enum.OrderStatusOutForDelivery
	Delivered      Status = enum.OrderStatusDelivered
	Cancelled      Status = enum.OrderStatusCancelled
)

// sequence is the fixed total order used to compute offered transitions.
var sequence = []Status{Pending, Preparing, OutForDelivery, Delivered, Cancelled}

// Sequence returns every status in lifecycle order.
func Sequence() []Status {
	return append([]Status(nil), sequence...)
}

// Parse normalizes a raw status. An absent status is the server default, pending.
// Unrecognized values are kept so callers can still display them.
func Parse(s string) Status {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pending
	}
	return Status(s)
}

func (s Status) String() string { return string(s) }

// Index returns the position of s in the lifecycle sequence, or -1.
func Index(s Status) int {
	for i, v := range sequence {
		if v == s {
			return i
		}
	}
	return -1
}

func IsValid(s Status) bool {
	return Index(s) >= 0
}

// IsTerminal reports whether no further transition is offered from s.
func IsTerminal(s Status) bool {
	return s == Delivered || s == Cancelled
}

// NextOptions returns every status strictly after s in the sequence.
// Skipping ahead (pending straight to delivered) is allowed. An unknown
// status sits before the sequence, so every status is offered for it.
func NextOptions(s Status) []Status {
	if IsTerminal(s) {
		return nil
	}
	idx := Index(s)
	out := make([]Status, 0, len(sequence)-idx-1)
	for i := idx + 1; i < len(sequence); i++ {
		out = append(out, sequence[i])
	}
	return out
}

// CanTransition reports whether next is among the options offered from current.
func CanTransition(current, next Status) bool {
	for _, s := range NextOptions(current) {
		if s == next {
			return true
		}
	}
	return false
}
