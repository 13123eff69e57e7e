package orderbook

import (
	"errors"
	"fmt"
)

// ErrBookClosed is returned for mutations submitted after Close.
var ErrBookClosed = errors.New("order book closed")

// ValidationError rejects an order or book that violates a construction
// rule. The offending value never enters the book.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// OrderNotFoundError reports a cancel whose id is not resting at the
// stated side and price. The book is left unchanged.
type OrderNotFoundError struct {
	ID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.ID)
}

// UnsupportedActionError reports an action other than Add or Remove
// reaching Execute. This is a caller defect, not a data condition.
type UnsupportedActionError struct {
	Action Action
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("unsupported order action type: %q", e.Action)
}
