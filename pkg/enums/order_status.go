package enums

// OrderStatus is the closed set of fulfillment states an order moves through.
type OrderStatus string

const (
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusInProcess OrderStatus = "In Process"
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusDisputed  OrderStatus = "Disputed"
	OrderStatusOnHold    OrderStatus = "On Hold"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusShipped, OrderStatusInProcess, OrderStatusPending,
		OrderStatusCancelled, OrderStatusDisputed, OrderStatusOnHold:
		return true
	}
	return false
}
