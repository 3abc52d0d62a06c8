package dto

// WishlistRequest carries the descriptive fields of an offer; status
// and sale fields are never writable through create or replace.
type WishlistRequest struct {
	PropertyName string  `json:"property_name"`
	Location     string  `json:"location"`
	PriceRange   string  `json:"price_range"`
	AgentName    string  `json:"agent_name"`
	AgentEmail   string  `json:"agent_email"`
	AgentImage   string  `json:"agent_image"`
	UserName     string  `json:"user_name"`
	UserEmail    string  `json:"user_email"`
	OfferedPrice float64 `json:"offered_price"`
}

// WishlistStatusRequest discriminates between a status-only transition
// and a sale completion: the sale fields are present only for the
// latter, and must then be present together.
type WishlistStatusRequest struct {
	Status        string   `json:"status"`
	TransactionID string   `json:"transaction_id,omitempty"`
	SoldPrice     *float64 `json:"sold_price,omitempty"`
}
