package config

import "time"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Empty means all interfaces.
	Host string `yaml:"host"`

	// Port is the listen port.
	Port int `yaml:"port"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// ShutdownTimeout is the max time the HTTP server drains on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// AuthTokenEnv names the environment variable holding the API bearer
	// token. When the variable is unset, authentication is disabled.
	AuthTokenEnv string `yaml:"auth_token_env"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            8080,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		AuthTokenEnv:    "CALLSCOPE_API_TOKEN",
	}
}
