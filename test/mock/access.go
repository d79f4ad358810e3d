// test/mock/access.go
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/helioshr/helios/api/model"
)

// MockUserDirectory is a mock implementation of service.UserDirectory
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetUserSnapshot(ctx context.Context, userID string) (*model.UserSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserSnapshot), args.Error(1)
}

// MockLedgerReader is a mock implementation of service.LedgerReader
type MockLedgerReader struct {
	mock.Mock
}

func (m *MockLedgerReader) GetValidPrerequisites(ctx context.Context, userID string, asOf time.Time) (model.PrerequisiteLedger, error) {
	args := m.Called(ctx, userID, asOf)
	return args.Get(0).(model.PrerequisiteLedger), args.Error(1)
}

// MockWorkSystemRepository is a mock implementation of service.WorkSystemRepository
type MockWorkSystemRepository struct {
	mock.Mock
}

func (m *MockWorkSystemRepository) GetWorkSystem(ctx context.Context, systemID string) (*model.WorkSystem, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkSystem), args.Error(1)
}

func (m *MockWorkSystemRepository) ListWorkSystems(ctx context.Context) ([]*model.WorkSystem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.WorkSystem), args.Error(1)
}

func (m *MockWorkSystemRepository) ResolveTrainingTitles(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockWorkSystemRepository) ResolvePolicyTitles(ctx context.Context, ids []string) (map[string]string, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[string]string), args.Error(1)
}

// MockCounterStore is a mock implementation of service.CounterStore
type MockCounterStore struct {
	mock.Mock
}

func (m *MockCounterStore) UpsertIncrementCounter(ctx context.Context, userID, systemID string) (*model.AccessCounterRecord, error) {
	args := m.Called(ctx, userID, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessCounterRecord), args.Error(1)
}

func (m *MockCounterStore) GetAccessStats(ctx context.Context, userID string) ([]model.AccessCounterRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessCounterRecord), args.Error(1)
}

// InMemoryCounterStore is a concurrency-safe fake counter store: the
// increment is serialized inside the store, mirroring the atomic upsert the
// real adapter performs.
type InMemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*model.AccessCounterRecord
}

func NewInMemoryCounterStore() *InMemoryCounterStore {
	return &InMemoryCounterStore{counters: make(map[string]*model.AccessCounterRecord)}
}

func (s *InMemoryCounterStore) UpsertIncrementCounter(ctx context.Context, userID, systemID string) (*model.AccessCounterRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID + ":" + systemID
	record, ok := s.counters[key]
	if !ok {
		record = &model.AccessCounterRecord{UserID: userID, WorkSystemID: systemID}
		s.counters[key] = record
	}
	record.AccessCount++
	record.LastAccessedAt = time.Now()

	snapshot := *record
	return &snapshot, nil
}

func (s *InMemoryCounterStore) GetAccessStats(ctx context.Context, userID string) ([]model.AccessCounterRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []model.AccessCounterRecord
	for _, record := range s.counters {
		if record.UserID == userID {
			records = append(records, *record)
		}
	}
	return records, nil
}

// Count returns the current counter value for one (user, system) pair.
func (s *InMemoryCounterStore) Count(userID, systemID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.counters[userID+":"+systemID]
	if !ok {
		return 0
	}
	return record.AccessCount
}
