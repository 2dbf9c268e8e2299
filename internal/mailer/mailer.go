package mailer

import "context"

// OrderCreated carries what the notification template renders.
type OrderCreated struct {
	OrderID     uint
	ClientName  string
	ProductName string
	Price       float64
}

type Mailer interface {
	SendOrderCreated(ctx context.Context, to string, data OrderCreated) error
}
