package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/limiter"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
	"github.com/Antonmish822/SHORT-HACKX5/internal/repository"
)

type fakeUsers struct {
	byContact map[string]*model.User

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byContact: map[string]*model.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byContact[u.Contact]; exists {
		return errs.ErrContactTaken
	}
	cpy := *u
	cpy.CreatedAt = time.Now()
	f.byContact[u.Contact] = &cpy
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byContact {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByContact(_ context.Context, contact string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byContact[contact]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) UpdateInterests(_ context.Context, id uuid.UUID, interests string) error {
	for _, u := range f.byContact {
		if u.ID == id {
			u.Interests = interests
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeUsers) SetRole(_ context.Context, contact, role string) error {
	u, ok := f.byContact[contact]
	if !ok {
		return errs.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUsers) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.byContact))
	for _, u := range f.byContact {
		out = append(out, *u)
	}
	return out, nil
}

type fakeQuests struct {
	byID map[uuid.UUID]*model.Quest
}

var _ repository.QuestRepository = (*fakeQuests)(nil)

func newFakeQuests() *fakeQuests {
	return &fakeQuests{byID: map[uuid.UUID]*model.Quest{}}
}

func (f *fakeQuests) Create(_ context.Context, q *model.Quest) error {
	cpy := *q
	cpy.CreatedAt = time.Now()
	f.byID[q.ID] = &cpy
	return nil
}

func (f *fakeQuests) GetByID(_ context.Context, id uuid.UUID) (*model.Quest, error) {
	q, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrQuestNotFound
	}
	c := *q
	return &c, nil
}

func (f *fakeQuests) List(_ context.Context) ([]model.Quest, error) {
	out := make([]model.Quest, 0, len(f.byID))
	for _, q := range f.byID {
		out = append(out, *q)
	}
	return out, nil
}

type pairKey struct{ user, quest uuid.UUID }

// fakeSubmissions mimics the repository's transactional submit: the insert
// and the points/level update happen together or not at all.
type fakeSubmissions struct {
	users *fakeUsers
	byKey map[pairKey]*model.Submission

	submitErr error
}

var _ repository.SubmissionRepository = (*fakeSubmissions)(nil)

func newFakeSubmissions(users *fakeUsers) *fakeSubmissions {
	return &fakeSubmissions{users: users, byKey: map[pairKey]*model.Submission{}}
}

func (f *fakeSubmissions) Submit(_ context.Context, sub *model.Submission, reward int) (*model.Submission, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	var owner *model.User
	for _, u := range f.users.byContact {
		if u.ID == sub.UserID {
			owner = u
			break
		}
	}
	if owner == nil {
		return nil, errs.ErrNotFound
	}
	key := pairKey{sub.UserID, sub.QuestID}
	if _, exists := f.byKey[key]; exists {
		return nil, errs.ErrAlreadySubmitted
	}
	cpy := *sub
	cpy.SubmittedAt = time.Now()
	f.byKey[key] = &cpy
	owner.Points += reward
	owner.Level = model.LevelFor(owner.Points)
	out := cpy
	return &out, nil
}

func (f *fakeSubmissions) GetByUserAndQuest(_ context.Context, userID, questID uuid.UUID) (*model.Submission, error) {
	s, ok := f.byKey[pairKey{userID, questID}]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (f *fakeSubmissions) CountCompleted(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, s := range f.byKey {
		if s.UserID == userID && s.Status == model.StatusCompleted {
			n++
		}
	}
	return n, nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	successErr error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}

func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return l.successErr
}

func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}
