package auth

import (
	"sort"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/internal/entity"
)

// Claims is the full claim set carried inside an issued token: the
// registered claims plus the identity attributes this API relies on.
type Claims struct {
	jwt.RegisteredClaims
	Email  string            `json:"email,omitempty"`
	UID    string            `json:"uid,omitempty"`
	Roles  []string          `json:"roles,omitempty"`
	Custom map[string]string `json:"custom,omitempty"`
}

// HasRole reports whether the claim set carries the role, matched
// case-insensitively.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// buildClaimSet assembles the identity attributes for signing. Role
// names are a set union: repeated names collapse, distinct (type,
// value) custom pairs accumulate. The result is deterministic and
// order-independent for one identity.
func buildClaimSet(u entity.User, custom map[string]string) (roles []string, merged map[string]string) {
	seen := make(map[string]struct{}, len(u.Roles))
	for _, r := range u.Roles {
		key := strings.ToLower(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		roles = append(roles, r)
	}
	sort.Strings(roles)

	if len(custom) > 0 {
		merged = make(map[string]string, len(custom))
		for k, v := range custom {
			merged[k] = v
		}
	}
	return roles, merged
}
