package device

import (
	"fmt"
	"strings"

	"face-gateway/pkg"
)

// ValidationError carries every violation found in a batch. The batch is
// rejected as a whole: the appliance applies insertMulti atomically, so a
// partial submission would diverge from its semantics.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("batch validation failed: %s", strings.Join(e.Violations, "; "))
}

// ValidateUserBatch checks a batch before it is sent to the appliance,
// accumulating all violations instead of stopping at the first.
func ValidateUserBatch(users []UserRecord) error {
	var violations []string

	if len(users) == 0 {
		return &ValidationError{Violations: []string{"UserList is required and cannot be empty"}}
	}

	for i, u := range users {
		if strings.TrimSpace(u.UserID) == "" {
			violations = append(violations, fmt.Sprintf("UserList[%d]: UserID is required", i))
		} else if !allDigits(u.UserID) {
			violations = append(violations, fmt.Sprintf("UserList[%d]: UserID must be a numeric value", i))
		}

		if strings.TrimSpace(u.UserName) == "" {
			violations = append(violations, fmt.Sprintf("UserList[%d]: UserName is required", i))
		} else if len(u.UserName) > 50 {
			violations = append(violations, fmt.Sprintf("UserList[%d]: UserName must be less than 50 characters", i))
		}

		if strings.TrimSpace(u.Password) == "" {
			violations = append(violations, fmt.Sprintf("UserList[%d]: Password is required", i))
		}

		if !validTimestamp(u.ValidFrom) {
			violations = append(violations, fmt.Sprintf("UserList[%d]: ValidFrom must be a valid date in format YYYY-MM-DD HH:mm:ss", i))
		}
		if !validTimestamp(u.ValidTo) {
			violations = append(violations, fmt.Sprintf("UserList[%d]: ValidTo must be a valid date in format YYYY-MM-DD HH:mm:ss", i))
		}
	}

	// Batch-wide pass: a UserID used twice invalidates the entire batch.
	seen := map[string]int{}
	for i, u := range users {
		if first, dup := seen[u.UserID]; dup {
			violations = append(violations, fmt.Sprintf("UserList[%d]: duplicate UserID %q (also used at index %d)", i, u.UserID, first))
			continue
		}
		seen[u.UserID] = i
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func validTimestamp(s string) bool {
	_, err := pkg.ParseTimestamp(s)
	return err == nil
}
