// api/audit/model.go
package audit

import "time"

// Action recorded for every successful work-system grant.
const ActionAccessSystem = "access_system"

// Entry is one append-only audit record. Entries are never mutated or
// deleted once indexed.
type Entry struct {
	ID         string    `json:"id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resource_id"`
	Details    string    `json:"details,omitempty"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
}
