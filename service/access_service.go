// api/service/access_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/helioshr/helios/api/access/engine"
	access_model "github.com/helioshr/helios/api/access/model"
	"github.com/helioshr/helios/api/audit"
	logger "github.com/helioshr/helios/api/logging"
	"github.com/helioshr/helios/api/model"
	"github.com/helioshr/helios/api/util"
)

// Read-side collaborators, injected so the service is unit-testable with
// in-memory fakes. All are read-only from the engine's perspective.

type UserDirectory interface {
	GetUserSnapshot(ctx context.Context, userID string) (*model.UserSnapshot, error)
}

type LedgerReader interface {
	GetValidPrerequisites(ctx context.Context, userID string, asOf time.Time) (model.PrerequisiteLedger, error)
}

type WorkSystemRepository interface {
	GetWorkSystem(ctx context.Context, systemID string) (*model.WorkSystem, error)
	ListWorkSystems(ctx context.Context) ([]*model.WorkSystem, error)
	ResolveTrainingTitles(ctx context.Context, ids []string) (map[string]string, error)
	ResolvePolicyTitles(ctx context.Context, ids []string) (map[string]string, error)
}

// CounterStore is the single mutable collaborator: the per-(user, system)
// grant counter with its atomic upsert-increment.
type CounterStore interface {
	UpsertIncrementCounter(ctx context.Context, userID, systemID string) (*model.AccessCounterRecord, error)
	GetAccessStats(ctx context.Context, userID string) ([]model.AccessCounterRecord, error)
}

// IAccessService defines the interface for work-system access operations
type IAccessService interface {
	CheckAccess(ctx context.Context, userID, systemID string) (*access_model.CheckResult, error)
	GrantAccess(ctx context.Context, userID, systemID string, meta access_model.NetworkMeta) (*access_model.GrantResult, error)
	ListWorkSystems(ctx context.Context, userID string) ([]access_model.SystemAccess, error)
	GetAccessStats(ctx context.Context, userID string) ([]model.AccessCounterRecord, error)
}

// AccessService orchestrates the evaluator with fresh reads on every call.
// Decisions are never cached: completions expire, acknowledgements lapse and
// roles change between requests.
type AccessService struct {
	users           UserDirectory
	ledger          LedgerReader
	systems         WorkSystemRepository
	counters        CounterStore
	evaluator       *engine.Evaluator
	auditService    audit.Service
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IAccessService = &AccessService{}

// NewAccessService creates a new instance of AccessService
func NewAccessService(
	users UserDirectory,
	ledger LedgerReader,
	systems WorkSystemRepository,
	counters CounterStore,
	auditService audit.Service,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *AccessService {
	service := &AccessService{
		users:           users,
		ledger:          ledger,
		systems:         systems,
		counters:        counters,
		evaluator:       engine.NewEvaluator(),
		auditService:    auditService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("access.denied", service.handleAccessDenied)

	return service
}

func (s *AccessService) handleAccessDenied(ctx context.Context, event util.Event) error {
	denied := event.Payload.(access_model.SystemAccess)
	return s.notificationSvc.NotifyAccessDenied(ctx, denied.System.ID, denied.Blockers)
}

// CheckAccess runs a read-only eligibility check. The system URL is included
// in the view only when access is allowed, so a denied caller never learns
// the destination of a system it cannot reach.
func (s *AccessService) CheckAccess(ctx context.Context, userID, systemID string) (*access_model.CheckResult, error) {
	system, decision, err := s.evaluate(ctx, userID, systemID)
	if err != nil {
		return nil, err
	}

	view := model.WorkSystemView{
		ID:           system.ID,
		Name:         system.Name,
		DisplayOrder: system.DisplayOrder,
	}
	if decision.Allowed {
		view.URL = system.URL
	}

	return &access_model.CheckResult{Decision: decision, System: view}, nil
}

// GrantAccess runs the same evaluation and, on allow, records the grant: the
// atomic counter increment first, then the audit entry. The audit append is
// best-effort; by the time it runs the grant has already been decided, so a
// failure there is logged and swallowed rather than turned into a denial.
func (s *AccessService) GrantAccess(ctx context.Context, userID, systemID string, meta access_model.NetworkMeta) (*access_model.GrantResult, error) {
	system, decision, err := s.evaluate(ctx, userID, systemID)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		logger.Info("Work system access denied",
			zap.String("userID", userID),
			zap.String("systemID", systemID),
			zap.Strings("blockers", decision.Blockers))
		s.eventBus.Publish(ctx, "access.denied", access_model.SystemAccess{
			System:   model.WorkSystemView{ID: system.ID, Name: system.Name},
			Allowed:  false,
			Blockers: decision.Blockers,
		})
		return &access_model.GrantResult{Granted: false, Blockers: decision.Blockers}, nil
	}

	if err := s.recordGrant(ctx, userID, system, meta); err != nil {
		return nil, err
	}

	return &access_model.GrantResult{
		Granted:  true,
		URL:      system.URL,
		Blockers: []string{},
	}, nil
}

// ListWorkSystems evaluates every active system for the user, in display
// order. Blocked systems appear without their URL.
func (s *AccessService) ListWorkSystems(ctx context.Context, userID string) ([]access_model.SystemAccess, error) {
	user, err := s.users.GetUserSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	systems, err := s.systems.ListWorkSystems(ctx)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledger.GetValidPrerequisites(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	var allRules []model.AccessRule
	for _, system := range systems {
		allRules = append(allRules, system.Rules...)
	}
	titles, err := s.resolveTitles(ctx, allRules)
	if err != nil {
		return nil, err
	}

	results := make([]access_model.SystemAccess, 0, len(systems))
	for _, system := range systems {
		decision := s.evaluator.Evaluate(*user, ledger, system.Rules, titles)
		view := model.WorkSystemView{
			ID:           system.ID,
			Name:         system.Name,
			DisplayOrder: system.DisplayOrder,
		}
		if decision.Allowed {
			view.URL = system.URL
		}
		results = append(results, access_model.SystemAccess{
			System:   view,
			Allowed:  decision.Allowed,
			Blockers: decision.Blockers,
		})
	}

	return results, nil
}

// GetAccessStats returns the user's grant counters.
func (s *AccessService) GetAccessStats(ctx context.Context, userID string) ([]model.AccessCounterRecord, error) {
	if _, err := s.users.GetUserSnapshot(ctx, userID); err != nil {
		return nil, err
	}
	return s.counters.GetAccessStats(ctx, userID)
}

// evaluate performs the shared rule walk behind both CheckAccess and
// GrantAccess: resolve the system, read snapshot and ledger fresh, then run
// the pure evaluator over the active rules.
func (s *AccessService) evaluate(ctx context.Context, userID, systemID string) (*model.WorkSystem, access_model.AccessDecision, error) {
	system, err := s.systems.GetWorkSystem(ctx, systemID)
	if err != nil {
		return nil, access_model.AccessDecision{}, err
	}

	var (
		user   *model.UserSnapshot
		ledger model.PrerequisiteLedger
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetUserSnapshot(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		ledger, err = s.ledger.GetValidPrerequisites(gctx, userID, time.Now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, access_model.AccessDecision{}, err
	}

	titles, err := s.resolveTitles(ctx, system.Rules)
	if err != nil {
		return nil, access_model.AccessDecision{}, err
	}

	decision := s.evaluator.Evaluate(*user, ledger, system.Rules, titles)
	return system, decision, nil
}

// resolveTitles collects the required ids across the given rules and maps
// them to display titles for blocker messages.
func (s *AccessService) resolveTitles(ctx context.Context, rules []model.AccessRule) (access_model.TitleIndex, error) {
	trainingIDs := map[string]struct{}{}
	policyIDs := map[string]struct{}{}
	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		for _, id := range rule.RequiredTrainingIDs {
			trainingIDs[id] = struct{}{}
		}
		for _, id := range rule.RequiredPolicyIDs {
			policyIDs[id] = struct{}{}
		}
	}

	index := access_model.TitleIndex{}
	if len(trainingIDs) == 0 && len(policyIDs) == 0 {
		return index, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		index.Trainings, err = s.systems.ResolveTrainingTitles(gctx, keys(trainingIDs))
		return err
	})
	g.Go(func() error {
		var err error
		index.Policies, err = s.systems.ResolvePolicyTitles(gctx, keys(policyIDs))
		return err
	})
	if err := g.Wait(); err != nil {
		return access_model.TitleIndex{}, err
	}

	return index, nil
}

// recordGrant is the access ledger writer: the counter update must succeed
// for the grant to stand, the audit append must not undo a grant that has
// already been communicated.
func (s *AccessService) recordGrant(ctx context.Context, userID string, system *model.WorkSystem, meta access_model.NetworkMeta) error {
	record, err := s.counters.UpsertIncrementCounter(ctx, userID, system.ID)
	if err != nil {
		logger.Error("Failed to record access grant",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("systemID", system.ID))
		return err
	}

	entry := audit.Entry{
		Timestamp:  time.Now(),
		UserID:     userID,
		Action:     audit.ActionAccessSystem,
		ResourceID: system.ID,
		Details:    system.Name,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}
	if err := s.auditService.Append(ctx, entry); err != nil {
		logger.Warn("Failed to append access audit entry",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("systemID", system.ID))
	}

	s.eventBus.Publish(ctx, "access.granted", *record)

	logger.Info("Work system access granted",
		zap.String("userID", userID),
		zap.String("systemID", system.ID),
		zap.Int64("accessCount", record.AccessCount))
	return nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
