package wasteserver

import "time"

type Distributor struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterDistributorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token       string      `json:"token"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	Distributor Distributor `json:"distributor"`
}

// SessionResponse describes the session behind a bearer token.
type SessionResponse struct {
	DistributorId string    `json:"distributorId"`
	Email         string    `json:"email"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type LocationValidation struct {
	Valid    bool   `json:"valid"`
	District string `json:"district"`
	City     string `json:"city"`
}
