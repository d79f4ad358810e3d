// api/model/prerequisite.go
package model

// Completion statuses on the training/policy relationships. Anything other
// than these does not count toward a prerequisite.
const (
	TrainingStatusCompleted  = "completed"
	PolicyStatusAcknowledged = "acknowledged"
)

// PrerequisiteLedger holds a user's currently valid training completions and
// policy acknowledgements, materialized at evaluation time and never cached.
// An entry is valid when its status matches and its expiry is null or strictly
// after the evaluation instant; an expiry equal to the instant is expired.
type PrerequisiteLedger struct {
	ValidTrainingIDs map[string]struct{}
	ValidPolicyIDs   map[string]struct{}
}

func NewPrerequisiteLedger(trainingIDs, policyIDs []string) PrerequisiteLedger {
	ledger := PrerequisiteLedger{
		ValidTrainingIDs: make(map[string]struct{}, len(trainingIDs)),
		ValidPolicyIDs:   make(map[string]struct{}, len(policyIDs)),
	}
	for _, id := range trainingIDs {
		ledger.ValidTrainingIDs[id] = struct{}{}
	}
	for _, id := range policyIDs {
		ledger.ValidPolicyIDs[id] = struct{}{}
	}
	return ledger
}

// HasTraining reports whether the training counts as currently valid.
func (l PrerequisiteLedger) HasTraining(id string) bool {
	_, ok := l.ValidTrainingIDs[id]
	return ok
}

// HasPolicy reports whether the policy acknowledgement counts as currently valid.
func (l PrerequisiteLedger) HasPolicy(id string) bool {
	_, ok := l.ValidPolicyIDs[id]
	return ok
}
