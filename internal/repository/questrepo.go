package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

// QuestRepository provides quest storage. Quests are immutable after creation.
type QuestRepository interface {
	// Create inserts a new quest.
	Create(ctx context.Context, q *model.Quest) error
	// GetByID loads a quest by ID; ErrQuestNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Quest, error)
	// List returns all quests ordered by creation time.
	List(ctx context.Context) ([]model.Quest, error)
}

// SubmissionRepository provides submission storage and the atomic
// submit-and-award operation.
type SubmissionRepository interface {
	// Submit atomically inserts the submission and awards reward points to
	// the user, recomputing the level. A second submission for the same
	// (user, quest) fails with ErrAlreadySubmitted and changes nothing.
	Submit(ctx context.Context, sub *model.Submission, reward int) (*model.Submission, error)
	// GetByUserAndQuest loads the submission for (user, quest); ErrNotFound if absent.
	GetByUserAndQuest(ctx context.Context, userID, questID uuid.UUID) (*model.Submission, error)
	// CountCompleted returns the number of the user's submissions with
	// status "completed".
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
}
