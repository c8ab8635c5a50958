// Package service contains application services for authentication and quest progression.
package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Antonmish822/SHORT-HACKX5/internal/contact"
	pkgcrypto "github.com/Antonmish822/SHORT-HACKX5/internal/crypto"
	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/limiter"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
	"github.com/Antonmish822/SHORT-HACKX5/internal/repository"
	"github.com/Antonmish822/SHORT-HACKX5/internal/token"
)

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a new user and returns a session token for it.
	// An empty password means no password was supplied.
	Register(ctx context.Context, rawContact, password string, consent bool) (model.Tokens, error)
	// LoginWithIP applies rate limiting and authenticates by contact.
	LoginWithIP(ctx context.Context, rawContact, password, ip string) (model.Tokens, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	hasher *pkgcrypto.Hasher
	tokens *token.Service
	ttl    time.Duration
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, hasher *pkgcrypto.Hasher, tokens *token.Service, ttl time.Duration, lim limiter.Limiter) *AuthServiceImpl {
	if ttl <= 0 {
		ttl = token.DefaultTTL
	}
	return &AuthServiceImpl{users: users, hasher: hasher, tokens: tokens, ttl: ttl, lim: lim}
}

// Register validates consent, classifies the contact, enforces the password
// rule for its kind (email requires one, Telegram forbids one), and creates
// the user with zero points at the Novice level.
func (s *AuthServiceImpl) Register(ctx context.Context, rawContact, password string, consent bool) (model.Tokens, error) {
	if !consent {
		return model.Tokens{}, errs.ErrConsentRequired
	}
	kind, normContact, err := contact.Classify(rawContact)
	if err != nil {
		return model.Tokens{}, err
	}

	var pwdHash []byte
	switch kind {
	case contact.KindEmail:
		if password == "" {
			return model.Tokens{}, errs.ErrPasswordRequired
		}
		if pwdHash, err = s.hasher.Hash(password); err != nil {
			return model.Tokens{}, err
		}
	case contact.KindTelegram:
		if password != "" {
			return model.Tokens{}, errs.ErrPasswordNotAllowed
		}
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return model.Tokens{}, err
	}
	u := &model.User{
		ID:      uid,
		Contact: normContact,
		PwdHash: pwdHash,
		Consent: true,
		Points:  0,
		Level:   model.LevelNovice,
		Role:    model.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return model.Tokens{}, err
	}
	return s.issue(u)
}

// LoginWithIP authenticates with rate limiting by (contact, ip).
//
// Accounts without a stored hash are passwordless Telegram accounts: contact
// equality is accepted as proof and any supplied password is ignored. This is
// a known-weak placeholder pending an out-of-band bot-delivered code; it is
// not an equivalent-strength authentication factor.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, rawContact, password, ip string) (model.Tokens, error) {
	_, normContact, err := contact.Classify(rawContact)
	if err != nil {
		return model.Tokens{}, err
	}
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, normContact, ipHash)
	if err != nil {
		return model.Tokens{}, err
	}
	if !allowed {
		return model.Tokens{}, errs.ErrRateLimited
	}

	u, err := s.users.GetByContact(ctx, normContact)
	if err != nil || (len(u.PwdHash) > 0 && !s.hasher.Verify(password, u.PwdHash)) {
		if blocked, _, ferr := s.lim.Failure(ctx, normContact, ipHash); ferr == nil && blocked {
			return model.Tokens{}, errs.ErrRateLimited
		}
		// one message for unknown contact and wrong password alike
		return model.Tokens{}, errs.ErrInvalidCredentials
	}

	_ = s.lim.Success(ctx, normContact, ipHash)

	return s.issue(u)
}

func (s *AuthServiceImpl) issue(u *model.User) (model.Tokens, error) {
	access, exp, err := s.tokens.Issue(u.ID, u.Role, s.ttl)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, nil
}
