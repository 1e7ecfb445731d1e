package cli

import (
	"os"
	"strings"
)

// defaultRole reads the session role from SITECTL_ROLE, defaulting to
// DIRECTOR, the role with every capability.
func defaultRole() string {
	if v := strings.ToUpper(os.Getenv("SITECTL_ROLE")); v != "" {
		return v
	}
	return "DIRECTOR"
}
