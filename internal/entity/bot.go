package entity

// Bot is one purchasable automation product in the public catalog.
type Bot struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Tagline    string   `json:"tagline"`
	Category   string   `json:"category"`
	PriceCents int      `json:"price_cents"`
	Features   []string `json:"features,omitempty"`
	Popular    bool     `json:"popular"`
}
