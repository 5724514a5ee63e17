package descriptor

import (
	"fmt"
	"strings"
)

// parseBool interprets the boolean spellings found in iAS descriptors.
// Empty values default to false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, nil
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", s)
}
