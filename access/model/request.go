package model

import "github.com/helioshr/helios/api/model"

// NetworkMeta carries request-level metadata into the audit trail. The engine
// never uses it for decisions.
type NetworkMeta struct {
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// CheckResult is the response of a read-only eligibility check. System.URL is
// withheld whenever Decision.Allowed is false.
type CheckResult struct {
	Decision AccessDecision       `json:"decision"`
	System   model.WorkSystemView `json:"system"`
}

// GrantResult is the response of a grant attempt. URL is empty whenever
// Granted is false; Blockers then explains why.
type GrantResult struct {
	Granted  bool     `json:"granted"`
	URL      string   `json:"url,omitempty"`
	Blockers []string `json:"blockers"`
}

// SystemAccess pairs one work system with the caller's evaluation of it, for
// the portal dashboard listing.
type SystemAccess struct {
	System   model.WorkSystemView `json:"system"`
	Allowed  bool                 `json:"allowed"`
	Blockers []string             `json:"blockers"`
}
