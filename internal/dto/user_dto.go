package dto

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

type AdminProbeResponse struct {
	Admin bool `json:"admin"`
}

type AgentProbeResponse struct {
	Agent bool `json:"agent"`
}
