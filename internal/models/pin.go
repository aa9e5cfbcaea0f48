package models

// PinStatusResponse reports whether a PIN is configured
// swagger:model PinStatusResponse
type PinStatusResponse struct {
	OK     bool `json:"ok"`
	HasPin bool `json:"hasPin"`
}

// VerifyPinRequest represents the JSON body for checking a PIN
// swagger:model VerifyPinRequest
type VerifyPinRequest struct {
	// example: 1234
	PIN string `json:"pin"`
}

// VerifyPinResponse reports the PIN check outcome
// swagger:model VerifyPinResponse
type VerifyPinResponse struct {
	OK    bool `json:"ok"`
	Valid bool `json:"valid"`
}

// SetPinRequest represents the JSON body for setting or changing the PIN
// swagger:model SetPinRequest
type SetPinRequest struct {
	// Current PIN, required when one is already set
	Current string `json:"current,omitempty"`

	// New PIN, 4 to 6 digits
	// required: true
	// example: 1234
	PIN string `json:"pin" validate:"required,number,min=4,max=6"`
}
