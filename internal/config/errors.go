package config

import "fmt"

// ConfigError reports an invalid, unsupported, or internally
// inconsistent configuration value. Key names the offending option
// when one can be identified.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
	}
	return "config: " + e.Reason
}
