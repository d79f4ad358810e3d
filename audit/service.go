// api/audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	Append(ctx context.Context, entry Entry) error
	QueryEntries(ctx context.Context, from, to time.Time, userID, resourceID string) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Append(ctx context.Context, entry Entry) error {
	return s.repo.Append(ctx, entry)
}

func (s *service) QueryEntries(ctx context.Context, from, to time.Time, userID, resourceID string) ([]Entry, error) {
	return s.repo.QueryEntries(ctx, from, to, userID, resourceID)
}
