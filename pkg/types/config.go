package types

import "time"

// HTTPConfig holds shared HTTP settings for E-utilities requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the client without one.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the PubMed search and fetch stages.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxResults is the ESearch retmax (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Tool and Email identify the caller to NCBI. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}
