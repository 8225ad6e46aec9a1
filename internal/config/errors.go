package config

import "fmt"

// ConfigError reports an invalid topology document.
//
// Missing fields and invalid values collapse into the same error; only the
// source path and the offending role are reported. Parse failures carry the
// underlying decoder error and an empty Role.
type ConfigError struct {
	Path string
	Role Role
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Role == "" {
		if e.Err != nil {
			return fmt.Sprintf("Invalid config %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("Invalid config %s", e.Path)
	}
	return fmt.Sprintf("Invalid block %s:%s", e.Path, e.Role)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
