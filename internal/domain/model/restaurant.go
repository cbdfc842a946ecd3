package model

import "time"

// Restaurant is the storefront new orders are linked to. OwnerID
// authorizes the restaurant-orders surface.
type Restaurant struct {
	ID        string
	OwnerID   string
	Name      string
	City      string
	CreatedAt time.Time
}
