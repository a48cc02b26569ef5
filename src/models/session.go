package models

import "time"

// Category identifies which kind of organization the dashboard user belongs to.
type Category string

const (
	CategoryGovernment   Category = "government"
	CategoryPolitical    Category = "political"
	CategoryCompany      Category = "company"
	CategoryOrganization Category = "organization"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryGovernment, CategoryPolitical, CategoryCompany, CategoryOrganization:
		return true
	}
	return false
}

// Theme selects the dashboard color scheme. It is derived from the login
// category and never set directly by the client.
type Theme string

const (
	ThemeGovernance Theme = "governance"
	ThemeCorporate  Theme = "corporate"
)

// ThemeForCategory maps a login category to its dashboard theme.
func ThemeForCategory(c Category) Theme {
	if c == CategoryGovernment || c == CategoryPolitical {
		return ThemeGovernance
	}
	return ThemeCorporate
}

// UserSession is the logged-in identity persisted between restarts. It is
// immutable for its lifetime; logout destroys it and re-login replaces it.
type UserSession struct {
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory"`
	Username    string   `json:"username"`
	Theme       Theme    `json:"theme"`
}

// AccentColor returns the primary UI color for the session's theme.
func (s *UserSession) AccentColor() string {
	if s.Theme == ThemeGovernance {
		return "#001f3f"
	}
	return "#1976D2"
}

// SecondaryColor returns the secondary UI color for the session's theme.
func (s *UserSession) SecondaryColor() string {
	if s.Theme == ThemeGovernance {
		return "#138808"
	}
	return "#64B5F6"
}

// CallSessionStatus represents the status of a calling session row.
type CallSessionStatus string

const (
	StatusInProgress CallSessionStatus = "IN_PROGRESS"
	StatusCompleted  CallSessionStatus = "COMPLETED"
)

// CallSession is a record of one outbound calling session as stored in the
// database. The backend owns the session id; the gateway logs its lifecycle.
type CallSession struct {
	SessionID   string            `json:"session_id"`
	PhoneNumber string            `json:"phone_number"`
	Status      CallSessionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}
