// api/dao/user_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	helios_errors "github.com/helioshr/helios/api/errors"
	logger "github.com/helioshr/helios/api/logging"
	"github.com/helioshr/helios/api/model"
)

type UserDAO struct {
	Driver neo4j.Driver
}

func NewUserDAO(driver neo4j.Driver) *UserDAO {
	dao := &UserDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Staff", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_staff_id IF NOT EXISTS
        FOR (u:Staff) REQUIRE u.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Staff ID", zap.Error(err))
		return err
	}
	return nil
}

// GetUserSnapshot reads the evaluation subject. Inactive or unknown users
// resolve to ErrUserNotFound so callers can surface a 404-equivalent.
func (dao *UserDAO) GetUserSnapshot(ctx context.Context, userID string) (*model.UserSnapshot, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:Staff {id: $id, active: true})
        RETURN u.role AS role, u.department AS department, u.country AS country
        `
		res, err := transaction.Run(query, map[string]interface{}{"id": userID})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		if res.Next() {
			record := res.Record()
			snapshot := &model.UserSnapshot{
				ID:         userID,
				Role:       asString(record.Values[0]),
				Department: asString(record.Values[1]),
				Country:    asString(record.Values[2]),
			}
			return snapshot, nil
		}

		return nil, helios_errors.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.UserSnapshot), nil
}
