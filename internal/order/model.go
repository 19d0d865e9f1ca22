package order

import "crypto/rand"

// Order is one placed order, appended to the log and never updated or
// deleted. The cart, store, and profile snapshots are stored as the client
// sent them.
type Order struct {
	OrderID    string         `json:"order_id"`
	Cart       []any          `json:"cart"`
	Quantities map[string]int `json:"quantities"`
	Store      map[string]any `json:"store"`
	PickupCode string         `json:"pickup_code"`
	Profile    map[string]any `json:"profile"`
}

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderID returns a random 10-character alphanumeric ID. IDs are not
// checked for collisions; the birthday-bound risk is accepted.
func NewOrderID() string {
	buf := make([]byte, 10)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return string(buf)
}
