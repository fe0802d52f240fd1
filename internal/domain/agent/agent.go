package agent

import (
	"fmt"
	"strings"
	"time"
)

type Agent struct {
	id           uint
	username     string
	email        string
	fullName     string
	passwordHash string
	role         Role
	active       bool
	projectIDs   []uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAgent(username, email, fullName, passwordHash string, role Role) (*Agent, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 150 {
		return nil, fmt.Errorf("username exceeds maximum length of 150 characters")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", role)
	}

	now := time.Now()
	return &Agent{
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		projectIDs:   []uint{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAgent(
	id uint,
	username, email, fullName, passwordHash string,
	role Role,
	active bool,
	projectIDs []uint,
	createdAt, updatedAt time.Time,
) (*Agent, error) {
	if id == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid agent role: %s", role)
	}

	if projectIDs == nil {
		projectIDs = []uint{}
	}

	return &Agent{
		id:           id,
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		projectIDs:   projectIDs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Agent) ID() uint             { return a.id }
func (a *Agent) Username() string     { return a.username }
func (a *Agent) Email() string        { return a.email }
func (a *Agent) FullName() string     { return a.fullName }
func (a *Agent) PasswordHash() string { return a.passwordHash }
func (a *Agent) Role() Role           { return a.role }
func (a *Agent) IsActive() bool       { return a.active }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time { return a.updatedAt }

// DisplayName returns the full name when set, otherwise the username.
func (a *Agent) DisplayName() string {
	if a.fullName != "" {
		return a.fullName
	}
	return a.username
}

// ProjectIDs returns the IDs of the projects this agent is a member of.
func (a *Agent) ProjectIDs() []uint {
	idsCopy := make([]uint, len(a.projectIDs))
	copy(idsCopy, a.projectIDs)
	return idsCopy
}

// IsMemberOf reports whether the agent belongs to the given project.
func (a *Agent) IsMemberOf(projectID uint) bool {
	for _, id := range a.projectIDs {
		if id == projectID {
			return true
		}
	}
	return false
}

// IsPrivileged reports whether the agent bypasses project scoping.
func (a *Agent) IsPrivileged() bool {
	return a.role.IsPrivileged()
}

func (a *Agent) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("agent ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Agent) UpdateProfile(email, fullName string) {
	a.email = email
	a.fullName = fullName
	a.updatedAt = time.Now()
}

func (a *Agent) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid agent role: %s", role)
	}
	a.role = role
	a.updatedAt = time.Now()
	return nil
}

func (a *Agent) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	a.passwordHash = hash
	a.updatedAt = time.Now()
	return nil
}

func (a *Agent) AssignProjects(projectIDs []uint) {
	if projectIDs == nil {
		projectIDs = []uint{}
	}
	a.projectIDs = projectIDs
	a.updatedAt = time.Now()
}

func (a *Agent) Activate() {
	a.active = true
	a.updatedAt = time.Now()
}

func (a *Agent) Deactivate() {
	a.active = false
	a.updatedAt = time.Now()
}
