package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

var questCols = []string{"id", "title", "description", "reward_points", "quest_type", "created_at"}

func TestQuestRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewQuestRepo(db)
	ctx := context.Background()
	q := &model.Quest{
		ID:           uuid.Must(uuid.NewV4()),
		Title:        "QR hunt",
		Description:  "Find all codes on the wall",
		RewardPoints: 150,
		QuestType:    "qr_hunt",
	}

	mock.ExpectExec(`INSERT INTO quests \(id, title, description, reward_points, quest_type\) VALUES \(\$1, \$2, \$3, \$4, \$5\)`).
		WithArgs(q.ID, q.Title, q.Description, q.RewardPoints, q.QuestType).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, q))
}

func TestQuestRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewQuestRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, title, description, reward_points, quest_type, created_at FROM quests WHERE id=\$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(questCols).
			AddRow(id, "Quiz", "Tech quiz", 50, "quiz", time.Now()))
	q, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 50, q.RewardPoints)

	mock.ExpectQuery(`SELECT id, title, description, reward_points, quest_type, created_at FROM quests WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, errs.ErrQuestNotFound)
}

func TestQuestRepo_List(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewQuestRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT id, title, description, reward_points, quest_type, created_at FROM quests ORDER BY created_at`).
		WillReturnRows(pgxmock.NewRows(questCols).
			AddRow(uuid.Must(uuid.NewV4()), "Quiz", "", 50, "quiz", time.Now()).
			AddRow(uuid.Must(uuid.NewV4()), "Photo", "", 100, "photo", time.Now()))
	qs, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 2)
}
