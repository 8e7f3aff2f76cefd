package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Billing.DueInDays < 0 {
		return fmt.Errorf("billing.due_in_days must be >= 0 (got %d)", c.Billing.DueInDays)
	}

	if len(c.Billing.DefaultCurrency) != 3 {
		return fmt.Errorf("billing.default_currency must be a 3-letter code (got %q)", c.Billing.DefaultCurrency)
	}

	if c.History.BufferSize <= 0 {
		return fmt.Errorf("history.buffer_size must be > 0 (got %d)", c.History.BufferSize)
	}

	return nil
}
