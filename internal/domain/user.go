package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the coarse account role used outside the review gate.
type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

func ParseRoleFromString(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("%w: invalid role %q", ErrValidation, s)
	}
	return r, nil
}

// ReviewerRoles is the staff pool notified when an animal has no owner.
var ReviewerRoles = []Role{RoleStaff, RoleAdmin}

// User carries only what this core needs: identity, role, and the
// display fields exposed to reviewers.
type User struct {
	ID               string
	UserName         string
	Email            string
	PhoneNumber      string
	Role             Role
	ProfileImage     string
	ProfileColor     string
	ProfileTextColor string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublicProfile is the restricted applicant view returned from review reads.
type PublicProfile struct {
	ID               string
	UserName         string
	Email            string
	PhoneNumber      string
	ProfileImage     string
	ProfileColor     string
	ProfileTextColor string
}

func (u *User) PublicProfile() *PublicProfile {
	if u == nil {
		return nil
	}
	return &PublicProfile{
		ID:               u.ID,
		UserName:         u.UserName,
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		ProfileImage:     u.ProfileImage,
		ProfileColor:     u.ProfileColor,
		ProfileTextColor: u.ProfileTextColor,
	}
}

// HasAnyRole is the explicit capability check used in place of ambient
// role middleware.
func (u *User) HasAnyRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}
