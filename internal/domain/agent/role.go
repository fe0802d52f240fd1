// Package agent holds the support-staff accounts, their roles and project
// memberships.
package agent

import "fmt"

type Role string

const (
	RoleAgent          Role = "agent"
	RoleProjectManager Role = "project_manager"
	RoleSystemAdmin    Role = "system_admin"
)

var validRoles = map[Role]bool{
	RoleAgent:          true,
	RoleProjectManager: true,
	RoleSystemAdmin:    true,
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool { return validRoles[r] }

func (r Role) IsProjectManager() bool { return r == RoleProjectManager }

// IsPrivileged reports whether the role outranks project scoping entirely.
func (r Role) IsPrivileged() bool { return r == RoleSystemAdmin }

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid agent role: %s", s)
	}
	return r, nil
}
