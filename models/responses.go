package models

// AuthResponse is the payload of a successful login or registration:
// a bearer token plus the profile it belongs to.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// HealthStatus is the reachability payload of GET /api/health.
type HealthStatus struct {
	Status string `json:"status"`
}

// Detail is the generic acknowledgement body the backend returns for
// fire-and-forget operations such as requesting a verification code.
type Detail struct {
	Detail string `json:"detail"`
}
