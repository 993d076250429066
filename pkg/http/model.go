package http

// APIResponse represents the standard response envelope.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents one validation failure detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"n"`
	Message string                 `json:"message,omitempty" example:"n is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
