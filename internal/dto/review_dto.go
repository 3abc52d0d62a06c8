package dto

type ReviewRequest struct {
	PropertyName  string  `json:"property_name"`
	ReviewerEmail string  `json:"reviewer_email"`
	ReviewerName  string  `json:"reviewer_name"`
	Comment       string  `json:"comment"`
	Rating        float64 `json:"rating"`
}
