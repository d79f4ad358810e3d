// api/dao/access_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	helios_errors "github.com/helioshr/helios/api/errors"
	logger "github.com/helioshr/helios/api/logging"
	"github.com/helioshr/helios/api/model"
)

// AccessDAO owns the per-(staff, system) grant counter. The counter lives on
// the ACCESSED relationship and is only ever touched through the upsert below.
type AccessDAO struct {
	Driver neo4j.Driver
}

func NewAccessDAO(driver neo4j.Driver) *AccessDAO {
	return &AccessDAO{Driver: driver}
}

// UpsertIncrementCounter creates the counter at 1 or increments it in place,
// in a single managed write transaction. The increment happens inside the
// store, never as a read-then-write in the application, so concurrent grants
// for the same pair cannot lose updates. The driver retries transient
// transaction failures before surfacing an error.
func (dao *AccessDAO) UpsertIncrementCounter(ctx context.Context, userID, systemID string) (*model.AccessCounterRecord, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:Staff {id: $userID}), (s:WorkSystem {id: $systemID})
        MERGE (u)-[r:ACCESSED]->(s)
        ON CREATE SET r.accessCount = 1
        ON MATCH SET r.accessCount = r.accessCount + 1
        SET r.lastAccessedAt = $now
        RETURN r.accessCount AS accessCount, r.lastAccessedAt AS lastAccessedAt
        `
		params := map[string]interface{}{
			"userID":   userID,
			"systemID": systemID,
			"now":      now,
		}

		res, err := transaction.Run(query, params)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		if res.Next() {
			record := res.Record()
			return &model.AccessCounterRecord{
				UserID:         userID,
				WorkSystemID:   systemID,
				AccessCount:    asInt64(record.Values[0]),
				LastAccessedAt: asTime(record.Values[1]),
			}, nil
		}

		// MERGE found no endpoints: user or system vanished mid-request.
		return nil, helios_errors.ErrWorkSystemNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to increment access counter",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("systemID", systemID),
			zap.Duration("duration", duration))
		return nil, err
	}

	record := result.(*model.AccessCounterRecord)
	logger.Debug("Access counter incremented",
		zap.String("userID", userID),
		zap.String("systemID", systemID),
		zap.Int64("accessCount", record.AccessCount),
		zap.Duration("duration", duration))
	return record, nil
}

// GetAccessStats lists a user's counters, most recently used system first.
func (dao *AccessDAO) GetAccessStats(ctx context.Context, userID string) ([]model.AccessCounterRecord, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:Staff {id: $userID})-[r:ACCESSED]->(s:WorkSystem)
        RETURN s.id AS systemID, s.name AS systemName,
               r.accessCount AS accessCount, r.lastAccessedAt AS lastAccessedAt
        ORDER BY r.lastAccessedAt DESC
        `
		res, err := transaction.Run(query, map[string]interface{}{"userID": userID})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		var records []model.AccessCounterRecord
		for res.Next() {
			record := res.Record()
			records = append(records, model.AccessCounterRecord{
				UserID:         userID,
				WorkSystemID:   asString(record.Values[0]),
				SystemName:     asString(record.Values[1]),
				AccessCount:    asInt64(record.Values[2]),
				LastAccessedAt: asTime(record.Values[3]),
			})
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]model.AccessCounterRecord), nil
}
