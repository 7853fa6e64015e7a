package dto

// SignupRequest is the request body for account creation.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the response body for successful signup or login.
type AuthResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// MnemonicResponse carries the wallet seed phrase of the authenticated user.
type MnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
}

// RotateMnemonicRequest is the request body for swapping the wallet seed.
type RotateMnemonicRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// CreateAppRequest is the request body for connecting a new app.
type CreateAppRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AppResponse describes one connected app.
type AppResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClientPubkey string `json:"client_pubkey"`
	CreatedAt    string `json:"created_at"`
}

// CreateAppResponse is the one-time creation result. ConnectionURL embeds the
// client secret and is never returned again.
type CreateAppResponse struct {
	AppResponse
	ConnectionURL string `json:"connection_url"`
}

// AppListResponse wraps the app list.
type AppListResponse struct {
	Items []AppResponse `json:"items"`
	Total int           `json:"total"`
}
