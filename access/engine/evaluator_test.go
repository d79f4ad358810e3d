package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helioshr/helios/api/access/engine"
	access_model "github.com/helioshr/helios/api/access/model"
	"github.com/helioshr/helios/api/model"
)

var testTitles = access_model.TitleIndex{
	Trainings: map[string]string{
		"T1": "T1 Title",
		"T2": "T2 Title",
	},
	Policies: map[string]string{
		"P1": "P1 Title",
	},
}

func staffUser() model.UserSnapshot {
	return model.UserSnapshot{
		ID:         "u1",
		Role:       model.RoleStaff,
		Department: "Engineering",
		Country:    "DE",
	}
}

func emptyLedger() model.PrerequisiteLedger {
	return model.NewPrerequisiteLedger(nil, nil)
}

func TestEvaluate_NoActiveRulesAllowsEveryone(t *testing.T) {
	e := engine.NewEvaluator()

	decision := e.Evaluate(staffUser(), emptyLedger(), nil, testTitles)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Blockers)

	// Inactive rules count as absent.
	rules := []model.AccessRule{
		{ID: "r1", Active: false, AllowedRoles: []string{model.RoleAdmin}},
	}
	decision = e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Blockers)
}

func TestEvaluate_RoleRestriction(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{ID: "r1", Active: true, AllowedRoles: []string{model.RoleAdmin}},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []string{"Role restriction: STAFF not allowed"}, decision.Blockers)
}

func TestEvaluate_RoleFailureShortCircuitsRestOfRule(t *testing.T) {
	e := engine.NewEvaluator()
	// Department, country and trainings would all fail too, but the role gate
	// skips them within this rule.
	rules := []model.AccessRule{
		{
			ID:                  "r1",
			Active:              true,
			AllowedRoles:        []string{model.RoleAdmin},
			AllowedDepartments:  []string{"Sales"},
			AllowedCountries:    []string{"US"},
			RequiredTrainingIDs: []string{"T1"},
		},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.Equal(t, []string{"Role restriction: STAFF not allowed"}, decision.Blockers)
}

func TestEvaluate_DepartmentFailureShortCircuitsCountry(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{
			ID:                 "r1",
			Active:             true,
			AllowedDepartments: []string{"Sales"},
			AllowedCountries:   []string{"US"},
		},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.Equal(t, []string{"Department restriction: Engineering not allowed"}, decision.Blockers)
}

func TestEvaluate_UnsetDepartmentPassesDepartmentClause(t *testing.T) {
	e := engine.NewEvaluator()
	user := staffUser()
	user.Department = ""
	rules := []model.AccessRule{
		{ID: "r1", Active: true, AllowedDepartments: []string{"Sales"}},
	}

	decision := e.Evaluate(user, emptyLedger(), rules, testTitles)
	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Blockers)
}

func TestEvaluate_MissingTrainingsReportedByTitle(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{ID: "r1", Active: true, RequiredTrainingIDs: []string{"T1", "T2"}},
	}
	ledger := model.NewPrerequisiteLedger([]string{"T1"}, nil)

	decision := e.Evaluate(staffUser(), ledger, rules, testTitles)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []string{"Missing required trainings: T2 Title"}, decision.Blockers)
}

func TestEvaluate_TrainingAndPolicyBlockersBothReported(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{
			ID:                  "r1",
			Active:              true,
			RequiredTrainingIDs: []string{"T1"},
			RequiredPolicyIDs:   []string{"P1"},
		},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []string{
		"Missing required trainings: T1 Title",
		"Missing required policy certifications: P1 Title",
	}, decision.Blockers)
}

func TestEvaluate_PassingRuleContributesNothing(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{ID: "r1", Active: true, AllowedRoles: []string{model.RoleStaff}},
		{ID: "r2", Active: true, AllowedCountries: []string{"US"}},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.False(t, decision.Allowed)
	assert.Equal(t, []string{"Country restriction: DE not allowed"}, decision.Blockers)
}

func TestEvaluate_BlockersFollowRuleThenClauseOrder(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{ID: "r1", Active: true, RequiredPolicyIDs: []string{"P1"}},
		{ID: "r2", Active: true, AllowedRoles: []string{model.RoleAdmin}},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.Equal(t, []string{
		"Missing required policy certifications: P1 Title",
		"Role restriction: STAFF not allowed",
	}, decision.Blockers)
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{
			ID:                  "r1",
			Active:              true,
			AllowedRoles:        []string{model.RoleStaff},
			RequiredTrainingIDs: []string{"T2", "T1"},
			RequiredPolicyIDs:   []string{"P1"},
		},
		{ID: "r2", Active: true, AllowedCountries: []string{"US"}},
	}

	first := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	second := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.Equal(t, first, second)
	// Required ids keep their declared order in the message.
	assert.Equal(t, "Missing required trainings: T2 Title, T1 Title", first.Blockers[0])
}

func TestEvaluate_UnresolvedTitleFallsBackToID(t *testing.T) {
	e := engine.NewEvaluator()
	rules := []model.AccessRule{
		{ID: "r1", Active: true, RequiredTrainingIDs: []string{"T9"}},
	}

	decision := e.Evaluate(staffUser(), emptyLedger(), rules, testTitles)
	assert.Equal(t, []string{"Missing required trainings: T9"}, decision.Blockers)
}
