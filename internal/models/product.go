package models

import "time"

// Product is a catalogue entry for departmental wear. Price holds the
// display string ("₦5,000") and PriceValue the numeric amount it renders;
// every write keeps the two in sync.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Hint        string    `json:"hint"`
	Price       string    `json:"price"`
	PriceValue  int       `json:"priceValue"`
	Sizes       []string  `json:"sizes"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
