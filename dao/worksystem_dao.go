// api/dao/worksystem_dao.go
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

type WorkSystemDAO struct {
	Driver neo4j.Driver
}

func NewWorkSystemDAO(driver neo4j.Driver) *WorkSystemDAO {
	dao := &WorkSystemDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for WorkSystem", zap.Error(err))
	}
	return dao
}

func (dao *WorkSystemDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_work_system_id IF NOT EXISTS
        FOR (s:WorkSystem) REQUIRE s.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on WorkSystem ID", zap.Error(err))
		return err
	}
	return nil
}

// GetWorkSystem returns one active system with its active rules in a stable
// order. Inactive or unknown systems resolve to ErrWorkSystemNotFound.
func (dao *WorkSystemDAO) GetWorkSystem(ctx context.Context, systemID string) (*model.WorkSystem, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (s:WorkSystem {id: $id, active: true})
        OPTIONAL MATCH (s)-[:HAS_RULE]->(r:AccessRule {active: true})
        WITH s, r ORDER BY r.createdAt, r.id
        RETURN s, collect(r) AS rules
        `
		res, err := transaction.Run(query, map[string]interface{}{"id": systemID})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		if res.Next() {
			record := res.Record()
			system := parseWorkSystemNode(record.Values[0].(neo4j.Node))
			system.Rules = parseRuleNodes(record.Values[1], system.ID)
			return system, nil
		}

		return nil, helios_errors.ErrWorkSystemNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Debug("Work system lookup failed",
			zap.Error(err),
			zap.String("systemID", systemID),
			zap.Duration("duration", duration))
		return nil, err
	}

	return result.(*model.WorkSystem), nil
}

// ListWorkSystems returns every active system with its rules, in display order.
func (dao *WorkSystemDAO) ListWorkSystems(ctx context.Context) ([]*model.WorkSystem, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (s:WorkSystem {active: true})
        OPTIONAL MATCH (s)-[:HAS_RULE]->(r:AccessRule {active: true})
        WITH s, r ORDER BY s.displayOrder, s.id, r.createdAt, r.id
        RETURN s, collect(r) AS rules
        `
		res, err := transaction.Run(query, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		var systems []*model.WorkSystem
		for res.Next() {
			record := res.Record()
			system := parseWorkSystemNode(record.Values[0].(neo4j.Node))
			system.Rules = parseRuleNodes(record.Values[1], system.ID)
			systems = append(systems, system)
		}
		return systems, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*model.WorkSystem), nil
}

// ResolveTrainingTitles maps training ids to display titles for blocker
// messages. Unknown ids are simply absent from the result.
func (dao *WorkSystemDAO) ResolveTrainingTitles(ctx context.Context, ids []string) (map[string]string, error) {
	return dao.resolveTitles(ctx, "Training", ids)
}

// ResolvePolicyTitles is the policy counterpart of ResolveTrainingTitles.
func (dao *WorkSystemDAO) ResolvePolicyTitles(ctx context.Context, ids []string) (map[string]string, error) {
	return dao.resolveTitles(ctx, "Policy", ids)
}

func (dao *WorkSystemDAO) resolveTitles(ctx context.Context, label string, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := fmt.Sprintf(`
        MATCH (n:%s)
        WHERE n.id IN $ids
        RETURN n.id AS id, n.title AS title
        `, label)
		res, err := transaction.Run(query, map[string]interface{}{"ids": ids})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", helios_errors.ErrStoreUnavailable, err)
		}

		titles := make(map[string]string, len(ids))
		for res.Next() {
			record := res.Record()
			titles[asString(record.Values[0])] = asString(record.Values[1])
		}
		return titles, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(map[string]string), nil
}

func parseWorkSystemNode(node neo4j.Node) *model.WorkSystem {
	props := node.Props
	return &model.WorkSystem{
		ID:           asString(props["id"]),
		Name:         asString(props["name"]),
		URL:          asString(props["url"]),
		Active:       props["active"] == true,
		DisplayOrder: int(asInt64(props["displayOrder"])),
		CreatedAt:    asTime(props["createdAt"]),
		UpdatedAt:    asTime(props["updatedAt"]),
	}
}

func parseRuleNodes(value interface{}, systemID string) []model.AccessRule {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}

	rules := make([]model.AccessRule, 0, len(raw))
	for _, item := range raw {
		node, ok := item.(neo4j.Node)
		if !ok {
			continue
		}
		props := node.Props
		rules = append(rules, model.AccessRule{
			ID:                  asString(props["id"]),
			WorkSystemID:        systemID,
			Active:              props["active"] == true,
			AllowedRoles:        asStringSlice(props["allowedRoles"]),
			AllowedDepartments:  asStringSlice(props["allowedDepartments"]),
			AllowedCountries:    asStringSlice(props["allowedCountries"]),
			RequiredTrainingIDs: asStringSlice(props["requiredTrainingIds"]),
			RequiredPolicyIDs:   asStringSlice(props["requiredPolicyIds"]),
		})
	}
	return rules
}
