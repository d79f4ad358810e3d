// api/model/training.go
package model

// Training and CompliancePolicy are referenced by access rules through their
// ids; the engine only ever reads their titles to build blocker messages.
type Training struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

type CompliancePolicy struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}
