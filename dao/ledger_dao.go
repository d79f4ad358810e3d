// api/dao/ledger_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	helios_errors "github.com/helioshr/helios/api/errors"
	"github.com/helioshr/helios/api/model"
)

// LedgerDAO materializes a user's currently valid prerequisites. It is
// read-only from the engine's perspective; completions and acknowledgements
// are written by the training and policy modules elsewhere in the portal.
type LedgerDAO struct {
	Driver neo4j.Driver
}

func NewLedgerDAO(driver neo4j.Driver) *LedgerDAO {
	return &LedgerDAO{Driver: driver}
}

// GetValidPrerequisites collects training and policy ids whose completion
// status matches and whose expiry is null or strictly after asOf. An expiry
// exactly equal to asOf counts as expired.
func (dao *LedgerDAO) GetValidPrerequisites(ctx context.Context, userID string, asOf time.Time) (model.PrerequisiteLedger, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:Staff {id: $id})
        OPTIONAL MATCH (u)-[c:COMPLETED]->(t:Training)
        WHERE c.status = $completedStatus
          AND (c.expiresAt IS NULL OR datetime(c.expiresAt) > datetime($asOf))
        WITH u, collect(DISTINCT t.id) AS trainingIds
        OPTIONAL MATCH (u)-[a:ACKNOWLEDGED]->(p:Policy)
        WHERE a.status = $acknowledgedStatus
          AND (a.expiresAt IS NULL OR datetime(a.expiresAt) > datetime($asOf))
        RETURN trainingIds, collect(DISTINCT p.id) AS policyIds
        `
		params := map[string]interface{}{
			"id":                 userID,
			"asOf":               asOf.UTC().Format(time.RFC3339Nano),
			"completedStatus":    model.TrainingStatusCompleted,
			"acknowledgedStatus": model.PolicyStatusAcknowledged,
		}

		res, err := transaction.Run(query, params)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		if res.Next() {
			record := res.Record()
			return model.NewPrerequisiteLedger(
				asStringSlice(record.Values[0]),
				asStringSlice(record.Values[1]),
			), nil
		}

		// Unknown user: empty ledger. The user lookup itself decides NotFound.
		return model.NewPrerequisiteLedger(nil, nil), nil
	})
	if err != nil {
		return model.PrerequisiteLedger{}, err
	}

	return result.(model.PrerequisiteLedger), nil
}
