// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "image-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// UnsplashConfig holds the settings of the Unsplash search client.
type UnsplashConfig struct {
	// AccessKey is the Unsplash client_id. It is read once at startup.
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty" mapstructure:"access_key"`

	// BaseURL is the search-photos endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// UIConfig holds settings for the interactive surface and the controller.
type UIConfig struct {
	// Presets are the quick-filter search terms offered next to the input.
	Presets []string `json:"presets" yaml:"presets" mapstructure:"presets"`

	// DiscardStale drops fetch results that resolve after a newer request
	// has already been applied. Off by default: the last result to arrive wins.
	DiscardStale bool `json:"discard_stale" yaml:"discard_stale" mapstructure:"discard_stale"`
}

// Config groups all settings of the application.
type Config struct {
	HTTP     HTTPConfig     `json:"http" yaml:"http" mapstructure:"http"`
	Unsplash UnsplashConfig `json:"unsplash" yaml:"unsplash" mapstructure:"unsplash"`
	UI       UIConfig       `json:"ui" yaml:"ui" mapstructure:"ui"`

	// LogFile receives developer diagnostics while the terminal UI runs.
	LogFile string `json:"log_file" yaml:"log_file" mapstructure:"log_file"`
}
