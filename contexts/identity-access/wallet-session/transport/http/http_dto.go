package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AccountDTO struct {
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

type RegisterAccountRequest struct {
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
}

type AccountResponse struct {
	Status string     `json:"status"`
	Data   AccountDTO `json:"data"`
}

type OpenSessionRequest struct {
	Address string `json:"address"`
}

type SessionResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token     string `json:"token"`
		Address   string `json:"address"`
		ExpiresAt string `json:"expires_at"`
	} `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
