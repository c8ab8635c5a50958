package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
	"github.com/Antonmish822/SHORT-HACKX5/internal/repository"
)

// QuestService defines quest browsing, submission, profile, and admin operations.
type QuestService interface {
	// Submit records a quest completion for the user and awards points.
	// An empty status defaults to "completed".
	Submit(ctx context.Context, userID, questID uuid.UUID, status model.SubmissionStatus, metadata string) (*model.Submission, error)
	// ListQuests returns all quests.
	ListQuests(ctx context.Context) ([]model.Quest, error)
	// CreateQuest creates a new quest (admin operation).
	CreateQuest(ctx context.Context, title, description string, rewardPoints int, questType string) (*model.Quest, error)
	// Profile returns the user's profile view.
	Profile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	// UpdateInterests replaces the user's interests string.
	UpdateInterests(ctx context.Context, userID uuid.UUID, interests string) error
	// ListUsers returns profile views for all users (admin operation).
	ListUsers(ctx context.Context) ([]model.Profile, error)
}

type QuestServiceImpl struct {
	users       repository.UserRepository
	quests      repository.QuestRepository
	submissions repository.SubmissionRepository
}

// NewQuestService constructs QuestService with required dependencies.
func NewQuestService(users repository.UserRepository, quests repository.QuestRepository, submissions repository.SubmissionRepository) *QuestServiceImpl {
	return &QuestServiceImpl{users: users, quests: quests, submissions: submissions}
}

// Submit checks the quest exists, then delegates the atomic insert-and-award
// to the repository. Points change exactly once per (user, quest); a second
// call fails with ErrAlreadySubmitted.
func (s *QuestServiceImpl) Submit(
	ctx context.Context, userID, questID uuid.UUID, status model.SubmissionStatus, metadata string,
) (*model.Submission, error) {
	if status == "" {
		status = model.StatusCompleted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown submission status %q", errs.ErrValidation, status)
	}

	q, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}

	sid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	sub := &model.Submission{
		ID:       sid,
		UserID:   userID,
		QuestID:  questID,
		Status:   status,
		Metadata: metadata,
	}
	return s.submissions.Submit(ctx, sub, q.RewardPoints)
}

// ListQuests returns all quests.
func (s *QuestServiceImpl) ListQuests(ctx context.Context) ([]model.Quest, error) {
	return s.quests.List(ctx)
}

// CreateQuest validates and persists a new quest.
func (s *QuestServiceImpl) CreateQuest(
	ctx context.Context, title, description string, rewardPoints int, questType string,
) (*model.Quest, error) {
	if title == "" || questType == "" {
		return nil, fmt.Errorf("%w: empty title/quest_type", errs.ErrValidation)
	}
	if rewardPoints <= 0 {
		return nil, fmt.Errorf("%w: reward_points must be positive", errs.ErrValidation)
	}
	qid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	q := &model.Quest{
		ID:           qid,
		Title:        title,
		Description:  description,
		RewardPoints: rewardPoints,
		QuestType:    questType,
	}
	if err := s.quests.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Profile assembles the profile view. CompletedQuests counts only
// submissions with status "completed".
func (s *QuestServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profileOf(ctx, u)
}

// UpdateInterests replaces the user's interests string.
func (s *QuestServiceImpl) UpdateInterests(ctx context.Context, userID uuid.UUID, interests string) error {
	return s.users.UpdateInterests(ctx, userID, interests)
}

// ListUsers returns profile views for all users.
func (s *QuestServiceImpl) ListUsers(ctx context.Context) ([]model.Profile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Profile, 0, len(users))
	for i := range users {
		p, err := s.profileOf(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *QuestServiceImpl) profileOf(ctx context.Context, u *model.User) (*model.Profile, error) {
	completed, err := s.submissions.CountCompleted(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &model.Profile{
		ID:              u.ID,
		Contact:         u.Contact,
		Points:          u.Points,
		Level:           u.Level,
		Interests:       u.Interests,
		CompletedQuests: completed,
	}, nil
}
