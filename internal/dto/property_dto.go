package dto

import "encoding/json"

// PropertyRequest is used for both create and full-replace updates;
// replace overwrites every descriptive field with what is sent.
type PropertyRequest struct {
	PropertyName string          `json:"property_name"`
	Location     string          `json:"location"`
	PriceRange   string          `json:"price_range"`
	Description  string          `json:"description"`
	AgentName    string          `json:"agent_name"`
	AgentEmail   string          `json:"agent_email"`
	AgentImage   string          `json:"agent_image"`
	Media        json.RawMessage `json:"media"`
}

type VerificationStatusRequest struct {
	VerificationStatus string `json:"verification_status"`
}
