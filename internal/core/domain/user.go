package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role gates access to routes. The set is closed: anything outside it is
// rejected at the boundary where it is parsed.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// DefaultRole is assigned at registration when no role is requested.
const DefaultRole = RoleReceptionist

var ErrInvalidRole = errors.New("invalid role")

// Roles returns every known role in declaration order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleReceptionist}
}

// ParseRole converts s into a Role. Matching is exact.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// RoleSet is the set of roles a route accepts.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s))
	for _, r := range Roles() {
		if s.Contains(r) {
			names = append(names, string(r))
		}
	}
	return strings.Join(names, ",")
}

// Identity is the principal as known to the external auth provider.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// User is the application profile for an Identity.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the authenticated caller of a single request. It is built
// by the identity resolver and discarded when the request ends.
type Principal struct {
	ID       uuid.UUID
	Email    string
	Role     Role
	FullName *string
}

// NewPrincipal builds the request principal from an active profile.
func NewPrincipal(u *User) *Principal {
	return &Principal{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
	}
}

// UserUpdate carries the profile fields that may change. Nil means untouched.
type UserUpdate struct {
	FullName *string
	Email    *string
	Role     *Role
	IsActive *bool
}

// Empty reports whether the update changes nothing.
func (u UserUpdate) Empty() bool {
	return u.FullName == nil && u.Email == nil && u.Role == nil && u.IsActive == nil
}
