package model

import "time"

// MenuItem describes a dish offered by a restaurant. Price is in minor
// currency units. Orders copy these fields into their cart snapshot and
// keep them even if the item is later edited or deleted.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	Image        string
	Price        int64
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
