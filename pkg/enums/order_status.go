package enums

import "fmt"

// OrderStatus represents the order fulfillment stages. The values are the
// user-facing strings persisted in the orders table.
type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// orderStatusSequence is ordered: tracking progress is the status index along
// this sequence.
var orderStatusSequence = []OrderStatus{
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// OrderStatuses returns the fulfillment sequence in order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatusSequence))
	copy(out, orderStatusSequence)
	return out
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	return s.StageIndex() >= 0
}

// StageIndex returns the zero-based position of the status within the
// fulfillment sequence, or -1 for unknown values.
func (s OrderStatus) StageIndex() int {
	for i, candidate := range orderStatusSequence {
		if candidate == s {
			return i
		}
	}
	return -1
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range orderStatusSequence {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
