package common

// SuccessResponse is the envelope for every successful JSON response
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed JSON response
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Provider string `json:"provider"`
}

// ProviderResponse reports the active provider
type ProviderResponse struct {
	Provider string `json:"provider"`
}

// ConfigResponse reports how the provider was selected and which credentials are present
type ConfigResponse struct {
	ProviderSetting      string `json:"provider_setting"`
	ResolvedProvider     string `json:"resolved_provider"`
	OpenAIKeyPresent     bool   `json:"openai_key_present"`
	HFTokenPresent       bool   `json:"hf_token_present"`
	AssemblyAIKeyPresent bool   `json:"assemblyai_key_present"`
	GroqKeyPresent       bool   `json:"groq_key_present"`
	StorageEnabled       bool   `json:"storage_enabled"`
	RedisEnabled         bool   `json:"redis_enabled"`
}
