package order

import "time"

// LineItem is one cart entry. The JSON field names follow the persisted
// order format, so items round-trip through the order store unchanged.
type LineItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Customizations []string  `json:"customizations"`
	AddedAt        time.Time `json:"addedAt"`
}
