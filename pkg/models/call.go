package models

// CallPayload is the body sent to the Retell create-phone-call endpoint
type CallPayload struct {
	FromNumber       string                 `json:"from_number" validate:"required"`
	ToNumber         string                 `json:"to_number" validate:"required"`
	AgentID          string                 `json:"agent_id,omitempty" validate:"required_without=OverrideAgentID"`
	OverrideAgentID  string                 `json:"override_agent_id,omitempty" validate:"required_without=AgentID"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	DynamicVariables map[string]string      `json:"retell_llm_dynamic_variables,omitempty"`
}

// CallResult is a successful provider response
type CallResult struct {
	StatusCode int
	Body       interface{}
}

// SuccessResponse is returned to the caller once the call is registered
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is returned to the caller on validation or dispatch failure
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
