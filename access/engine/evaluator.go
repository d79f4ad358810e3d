package engine

import (
	"fmt"
	"strings"

	access_model "github.com/helioshr/helios/api/access/model"
	"github.com/helioshr/helios/api/model"
)

// Evaluator decides whether a user may access a work system right now. It is
// a pure function over its inputs: no storage access, no shared state, safe
// for any number of concurrent callers.
//
// Semantics are AND across active rules with exhaustive blocker collection:
// every failing rule contributes its blockers, so the caller sees the full
// set of outstanding requirements rather than just the first one. Within a
// single rule the coarse eligibility gates (role, department, country) check
// in that order and the first failure skips the remaining clauses of that
// rule only; the training and policy clauses are independent and both report
// when both fail.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs every active rule against the user and ledger. A system with
// no active rules is open to all authenticated users. Blocker ordering is
// stable: rule order first, clause order within each rule.
func (e *Evaluator) Evaluate(user model.UserSnapshot, ledger model.PrerequisiteLedger, rules []model.AccessRule, titles access_model.TitleIndex) access_model.AccessDecision {
	blockers := []string{}

	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		blockers = append(blockers, e.evaluateRule(user, ledger, rule, titles)...)
	}

	return access_model.AccessDecision{
		Allowed:  len(blockers) == 0,
		Blockers: blockers,
	}
}

// evaluateRule checks the five clauses of one rule in their fixed order. The
// gate clauses set skipRemaining instead of returning early, keeping the
// short-circuit explicit and testable apart from the exhaustive collection.
func (e *Evaluator) evaluateRule(user model.UserSnapshot, ledger model.PrerequisiteLedger, rule model.AccessRule, titles access_model.TitleIndex) []string {
	var blockers []string
	skipRemaining := false

	if len(rule.AllowedRoles) > 0 && !contains(rule.AllowedRoles, user.Role) {
		blockers = append(blockers, fmt.Sprintf("Role restriction: %s not allowed", user.Role))
		skipRemaining = true
	}

	if !skipRemaining && len(rule.AllowedDepartments) > 0 && user.Department != "" && !contains(rule.AllowedDepartments, user.Department) {
		blockers = append(blockers, fmt.Sprintf("Department restriction: %s not allowed", user.Department))
		skipRemaining = true
	}

	if !skipRemaining && len(rule.AllowedCountries) > 0 && user.Country != "" && !contains(rule.AllowedCountries, user.Country) {
		blockers = append(blockers, fmt.Sprintf("Country restriction: %s not allowed", user.Country))
		skipRemaining = true
	}

	if skipRemaining {
		return blockers
	}

	// Prerequisite clauses do not gate each other: a user missing both a
	// training and a policy certification should learn both in one pass.
	if missing := missingFrom(rule.RequiredTrainingIDs, ledger.HasTraining); len(missing) > 0 {
		blockers = append(blockers, "Missing required trainings: "+joinTitles(missing, titles.TrainingTitle))
	}

	if missing := missingFrom(rule.RequiredPolicyIDs, ledger.HasPolicy); len(missing) > 0 {
		blockers = append(blockers, "Missing required policy certifications: "+joinTitles(missing, titles.PolicyTitle))
	}

	return blockers
}

// missingFrom returns the required ids the ledger does not cover, preserving
// the rule's declared order so blocker output is deterministic.
func missingFrom(required []string, has func(string) bool) []string {
	var missing []string
	for _, id := range required {
		if !has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinTitles(ids []string, title func(string) string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = title(id)
	}
	return strings.Join(names, ", ")
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
