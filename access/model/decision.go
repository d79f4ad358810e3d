package model

// AccessDecision is the outcome of evaluating one user against one work
// system's rule set. Blockers carry every failed clause in rule order, so a
// user sees all outstanding requirements in a single pass. Allowed is true
// exactly when Blockers is empty.
type AccessDecision struct {
	Allowed  bool     `json:"allowed"`
	Blockers []string `json:"blockers"`
}

// TitleIndex maps training/policy ids to their display titles for blocker
// messages. Ids absent from the index fall back to the raw id.
type TitleIndex struct {
	Trainings map[string]string
	Policies  map[string]string
}

func (t TitleIndex) TrainingTitle(id string) string {
	if title, ok := t.Trainings[id]; ok {
		return title
	}
	return id
}

func (t TitleIndex) PolicyTitle(id string) string {
	if title, ok := t.Policies[id]; ok {
		return title
	}
	return id
}
