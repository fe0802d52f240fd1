package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// StatusCode identifies the well-known workflow statuses the application
// depends on. Statuses remain admin-editable rows, but these codes must exist;
// the registry check at startup enforces that instead of scattering magic
// strings through action handlers.
type StatusCode string

const (
	StatusCodeNew           StatusCode = "new"
	StatusCodeInProgress    StatusCode = "in_progress"
	StatusCodeResolved      StatusCode = "resolved"
	StatusCodeClosed        StatusCode = "closed"
	StatusCodeClosedRemarks StatusCode = "closed_remarks"
)

// RequiredStatusCodes lists the codes that must be present in the status table
// for the console actions to function.
func RequiredStatusCodes() []StatusCode {
	return []StatusCode{
		StatusCodeNew,
		StatusCodeInProgress,
		StatusCodeResolved,
		StatusCodeClosed,
		StatusCodeClosedRemarks,
	}
}

func (sc StatusCode) String() string { return string(sc) }

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Status is an admin-configured ticket status row. The resolved/closed flags
// drive the derived resolved_at/closed_at bookkeeping on tickets.
type Status struct {
	id        uint
	name      string
	code      string
	color     string
	isDefault bool
	resolved  bool
	closed    bool
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

func NewStatus(name, code, color string, isDefault, resolved, closed bool, sortOrder int) (*Status, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, fmt.Errorf("status name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("status code is required")
	}
	if color == "" {
		color = "#777777"
	}
	if !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("invalid status color: %s", color)
	}

	now := time.Now()
	return &Status{
		name:      name,
		code:      code,
		color:     color,
		isDefault: isDefault,
		resolved:  resolved,
		closed:    closed,
		sortOrder: sortOrder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStatus(
	id uint,
	name, code, color string,
	isDefault, resolved, closed bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("status name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("status code is required")
	}

	return &Status{
		id:        id,
		name:      name,
		code:      code,
		color:     color,
		isDefault: isDefault,
		resolved:  resolved,
		closed:    closed,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Status) ID() uint             { return s.id }
func (s *Status) Name() string         { return s.name }
func (s *Status) Code() string         { return s.code }
func (s *Status) Color() string        { return s.color }
func (s *Status) IsDefault() bool      { return s.isDefault }
func (s *Status) IsResolved() bool     { return s.resolved }
func (s *Status) IsClosed() bool       { return s.closed }
func (s *Status) SortOrder() int       { return s.sortOrder }
func (s *Status) CreatedAt() time.Time { return s.createdAt }
func (s *Status) UpdatedAt() time.Time { return s.updatedAt }

func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Status) Update(name, color string, isDefault, resolved, closed bool, sortOrder int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("status name is required")
	}
	if color != "" && !hexColorPattern.MatchString(color) {
		return fmt.Errorf("invalid status color: %s", color)
	}
	s.name = name
	if color != "" {
		s.color = color
	}
	s.isDefault = isDefault
	s.resolved = resolved
	s.closed = closed
	s.sortOrder = sortOrder
	s.updatedAt = time.Now()
	return nil
}

// ValidateStatusRegistry checks that every required well-known code is present
// and that exactly one status is flagged as default. Called at startup after
// migrations and seeds have run.
func ValidateStatusRegistry(statuses []*Status) error {
	byCode := make(map[string]*Status, len(statuses))
	defaults := 0
	for _, s := range statuses {
		byCode[s.Code()] = s
		if s.IsDefault() {
			defaults++
		}
	}

	var missing []string
	for _, code := range RequiredStatusCodes() {
		if _, ok := byCode[code.String()]; !ok {
			missing = append(missing, code.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("status registry is missing required codes: %s", strings.Join(missing, ", "))
	}

	if defaults == 0 {
		return fmt.Errorf("no default status is configured")
	}
	if defaults > 1 {
		return fmt.Errorf("multiple default statuses are configured")
	}

	return nil
}
