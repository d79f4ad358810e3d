// api/model/worksystem.go
package model

import "time"

// WorkSystem is an internal tool staff may need access to. The engine treats
// it as read-only configuration; administration happens elsewhere.
type WorkSystem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	Active       bool         `json:"active"`
	DisplayOrder int          `json:"display_order"`
	Rules        []AccessRule `json:"rules,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// AccessRule is one eligibility clause set attached to a WorkSystem. Empty
// slices mean "unrestricted" for role/department/country and "none required"
// for trainings/policies.
type AccessRule struct {
	ID                  string   `json:"id"`
	WorkSystemID        string   `json:"work_system_id"`
	Active              bool     `json:"active"`
	AllowedRoles        []string `json:"allowed_roles,omitempty"`
	AllowedDepartments  []string `json:"allowed_departments,omitempty"`
	AllowedCountries    []string `json:"allowed_countries,omitempty"`
	RequiredTrainingIDs []string `json:"required_training_ids,omitempty"`
	RequiredPolicyIDs   []string `json:"required_policy_ids,omitempty"`
}

// WorkSystemView is the caller-facing projection of a WorkSystem. URL is
// populated only when the evaluation allowed access, so a denied caller never
// learns the destination.
type WorkSystemView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// AccessCounterRecord is the persisted per-(staff, system) grant counter.
type AccessCounterRecord struct {
	UserID         string    `json:"user_id"`
	WorkSystemID   string    `json:"work_system_id"`
	SystemName     string    `json:"system_name,omitempty"`
	AccessCount    int64     `json:"access_count"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}
