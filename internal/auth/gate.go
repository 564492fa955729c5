package auth

import "errors"

var (
	// ErrUnauthenticated means no valid claims were presented.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the claims are valid but carry none of the
	// required roles.
	ErrForbidden = errors.New("insufficient role")
)

// Authorize evaluates a validated claim set against the roles an
// operation requires. No required roles means the operation is open to
// anonymous callers, nil claims included. Role matching is
// case-insensitive.
func Authorize(claims *Claims, required ...string) error {
	if len(required) == 0 {
		return nil
	}
	if claims == nil {
		return ErrUnauthenticated
	}
	for _, role := range required {
		if claims.HasRole(role) {
			return nil
		}
	}
	return ErrForbidden
}
