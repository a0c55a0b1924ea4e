package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Server.RequestsPerMin <= 0 {
		return fmt.Errorf("server.requests_per_min must be > 0 (got %d)", c.Server.RequestsPerMin)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}
