// Package member implements the application service for end-user
// profile records managed from the admin console.
package member

import (
	"context"
	"sync"
	"time"

	"github.com/fitadmin/backend/internal/domain/member"
	"github.com/fitadmin/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles Member business operations
type Service struct {
	members member.Repository
	logger  *zap.Logger
}

// NewService creates a new Service
func NewService(members member.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		members: members,
		logger:  logger,
	}
}

// Create validates and stores a new Member, applying profile defaults
// and stamping joinedDate.
func (s *Service) Create(ctx context.Context, m *member.Member) (*member.Member, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.ApplyDefaults()

	now := time.Now()
	m.JoinedDate = now
	m.UpdatedAt = &now

	if err := s.members.Insert(ctx, m); err != nil {
		s.logger.Error("Failed to insert member", zap.Error(err))
		return nil, err
	}
	return m, nil
}

// List returns every Member, newest first.
func (s *Service) List(ctx context.Context) ([]member.Member, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []member.Member{}
	}
	return members, nil
}

// Get returns a Member together with its completions sub-collection.
func (s *Service) Get(ctx context.Context, id string) (*member.Member, []member.Completion, error) {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	completions, err := s.members.FindCompletions(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if completions == nil {
		completions = []member.Completion{}
	}
	return m, completions, nil
}

// Update merges the patch into the stored Member and returns the
// updated document. A patch with no fields is rejected before touching
// storage.
func (s *Service) Update(ctx context.Context, id string, patch member.Patch) (*member.Member, error) {
	if patch.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Update requires at least one field")
	}
	if err := s.members.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.members.FindByID(ctx, id)
}

// Delete removes the Member document, then cascades its completions and
// progress sub-collections one document at a time. The cascade is
// best-effort: a partial failure leaves orphan documents behind and is
// reported in the result.
func (s *Service) Delete(ctx context.Context, id string) (shared.FanOutResult, error) {
	completionIDs, err := s.members.CompletionIDs(ctx, id)
	if err != nil {
		return shared.FanOutResult{}, err
	}
	progressIDs, err := s.members.ProgressIDs(ctx, id)
	if err != nil {
		return shared.FanOutResult{}, err
	}

	if err := s.members.Delete(ctx, id); err != nil {
		return shared.FanOutResult{}, err
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)
	deleteDoc := func(docID string, remove func(context.Context, string, string) error) {
		defer wg.Done()
		if err := remove(ctx, id, docID); err != nil {
			s.logger.Warn("Failed to cascade member sub-document",
				zap.String("memberId", id),
				zap.String("docId", docID),
				zap.Error(err),
			)
			mu.Lock()
			failed = append(failed, docID)
			mu.Unlock()
		}
	}
	for _, docID := range completionIDs {
		wg.Add(1)
		go deleteDoc(docID, s.members.DeleteCompletion)
	}
	for _, docID := range progressIDs {
		wg.Add(1)
		go deleteDoc(docID, s.members.DeleteProgress)
	}
	wg.Wait()

	result := shared.NewFanOutResult(len(completionIDs)+len(progressIDs), failed)
	s.logger.Info("Deleted member",
		zap.String("memberId", id),
		zap.String("cascadeStatus", string(result.Status)),
		zap.Int("cascadeTotal", result.Total),
	)
	return result, nil
}
