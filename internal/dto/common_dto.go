package dto

import "github.com/google/uuid"

// Stable machine-readable error kinds carried alongside the human
// message.
const (
	CodeUnauthenticated   = "unauthenticated"
	CodeForbidden         = "forbidden"
	CodeNotFound          = "not_found"
	CodeInvalidInput      = "invalid_input"
	CodeInvalidTransition = "invalid_transition"
	CodeUpstreamFailure   = "upstream_failure"
)

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateResult mirrors the document-store update shape clients already
// consume: a missing id or a no-op is modified:false, not an error.
type UpdateResult struct {
	Modified bool `json:"modified"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// InsertResult reports insertedId:null with a message when an
// idempotent create hits an existing document.
type InsertResult struct {
	InsertedID *uuid.UUID `json:"insertedId"`
	Message    string     `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
