package dto

type PaymentIntentRequest struct {
	OfferedPrice string `json:"offered_price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
