package config

import (
	"fmt"
	"net"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// ServerConfig holds settings for the HTTP game server.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string

	// AllowOrigins is the CORS origin list, comma separated.
	AllowOrigins string

	// LogRequests enables one access log line per request on LogFile.
	LogRequests bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		AllowOrigins: "*",
		LogRequests:  true,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if _, _, err := net.SplitHostPort(s.Addr); err != nil {
		return fmt.Errorf("listen address %q: %v: %w", s.Addr, err, errors.ErrInvalidConfig)
	}
	return nil
}
