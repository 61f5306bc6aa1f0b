package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration reports an error unless d is greater than zero.
// Used for TTLs and timeouts where zero would disable expiry entirely.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
