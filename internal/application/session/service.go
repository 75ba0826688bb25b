// Package session implements the application service for standalone
// workout Sessions and their manual display ordering.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/fitadmin/backend/internal/domain/session"
	"github.com/fitadmin/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles Session business operations
type Service struct {
	sessions session.Repository
	logger   *zap.Logger
}

// NewService creates a new Service
func NewService(sessions session.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions: sessions,
		logger:   logger,
	}
}

// Create stores a new Session at the end of the manual order: its rank
// is one past the highest assigned Order, or 0 on an empty collection.
func (s *Service) Create(ctx context.Context, sess *session.Session) (*session.Session, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}

	maxOrder, found, err := s.sessions.MaxOrder(ctx)
	if err != nil {
		return nil, err
	}
	order := 0
	if found {
		order = maxOrder + 1
	}
	sess.Order = &order
	sess.CreatedAt = time.Now()

	if err := s.sessions.Insert(ctx, sess); err != nil {
		s.logger.Error("Failed to insert session", zap.Error(err))
		return nil, err
	}
	return sess, nil
}

// List returns every Session in display order: ranked Sessions first by
// ascending Order, unranked ones after by createdAt descending.
func (s *Service) List(ctx context.Context) ([]session.Session, error) {
	sessions, err := s.sessions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	session.Sort(sessions)
	if sessions == nil {
		sessions = []session.Session{}
	}
	return sessions, nil
}

// Update merges the patch into the stored Session. A patch with no
// fields is rejected before touching storage.
func (s *Service) Update(ctx context.Context, id string, patch session.Patch) error {
	if patch.IsEmpty() {
		return shared.NewDomainError("INVALID_INPUT", "Update requires at least one field")
	}
	return s.sessions.Update(ctx, id, patch)
}

// Delete removes a Session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Reorder assigns dense ranks 0..n-1 following the given sequence. The
// writes fan out concurrently and are best-effort: the result reports
// which updates failed, and callers must refetch the list on anything
// but full success.
func (s *Service) Reorder(ctx context.Context, orderedIDs []string) (shared.FanOutResult, error) {
	if len(orderedIDs) == 0 {
		return shared.FanOutResult{}, shared.NewDomainError("INVALID_INPUT", "Ordered session IDs are required")
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)
	for rank, id := range orderedIDs {
		wg.Add(1)
		go func(rank int, id string) {
			defer wg.Done()
			order := rank
			if err := s.sessions.Update(ctx, id, session.Patch{Order: &order}); err != nil {
				s.logger.Warn("Failed to update session order",
					zap.String("sessionId", id),
					zap.Int("order", rank),
					zap.Error(err),
				)
				mu.Lock()
				failed = append(failed, id)
				mu.Unlock()
			}
		}(rank, id)
	}
	wg.Wait()

	result := shared.NewFanOutResult(len(orderedIDs), failed)
	if !result.Succeeded() {
		s.logger.Warn("Session reorder completed with failures",
			zap.String("status", string(result.Status)),
			zap.Int("total", result.Total),
			zap.Int("failed", len(result.FailedIDs)),
		)
	}
	return result, nil
}
