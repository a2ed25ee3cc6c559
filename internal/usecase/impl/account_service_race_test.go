package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/domain/service"
	"gather/internal/infra/metrics"
	mockSvc "gather/internal/mocks/service"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// fakeSessionStore is an in-memory stand-in for the relational store. Execute
// holds a mutex for the whole transactional block and restores a snapshot of
// the token table when the block fails, mirroring commit/rollback semantics.
type fakeSessionStore struct {
	mu     sync.Mutex
	user   *entity.User
	tokens map[uuid.UUID]entity.RefreshToken
}

func newFakeSessionStore(user *entity.User) *fakeSessionStore {
	return &fakeSessionStore{
		user:   user,
		tokens: make(map[uuid.UUID]entity.RefreshToken),
	}
}

func (s *fakeSessionStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uuid.UUID]entity.RefreshToken, len(s.tokens))
	for id, token := range s.tokens {
		snapshot[id] = token
	}

	if err := fn(s); err != nil {
		s.tokens = snapshot

		return err
	}

	return nil
}

func (s *fakeSessionStore) UserRepo() repository.UserRepository { return s }

func (s *fakeSessionStore) CredentialRepo() repository.CredentialRepository { return nil }

func (s *fakeSessionStore) RefreshTokenRepo() repository.RefreshTokenRepository { return s }

func (s *fakeSessionStore) AttendeeRepo() repository.AttendeeRepository { return nil }

func (s *fakeSessionStore) ActivityRepo() repository.ActivityRepository { return nil }

func (s *fakeSessionStore) FollowingRepo() repository.FollowingRepository { return nil }

func (s *fakeSessionStore) PhotoRepo() repository.PhotoRepository { return nil }

func (s *fakeSessionStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if id != s.user.ID {
		return nil, repository.ErrUserNotFound
	}
	copied := *s.user

	return &copied, nil
}

func (s *fakeSessionStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *fakeSessionStore) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *fakeSessionStore) Create(ctx context.Context, user *entity.User) error {
	return errors.New("not supported")
}

func (s *fakeSessionStore) Update(ctx context.Context, user *entity.User) error {
	return errors.New("not supported")
}

func (s *fakeSessionStore) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()
	s.tokens[token.ID] = *token

	return nil
}

func (s *fakeSessionStore) FindRefreshTokenByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*entity.RefreshToken, error) {
	for _, token := range s.tokens {
		if token.UserID == userID && token.TokenHash == tokenHash {
			copied := token

			return &copied, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (s *fakeSessionStore) RevokeRefreshToken(ctx context.Context, id uuid.UUID, revokedAt time.Time) error {
	token, ok := s.tokens[id]
	if !ok {
		return repository.ErrRefreshTokenNotFound
	}
	if token.RevokedAt != nil {
		return repository.ErrRefreshTokenAlreadyRevoked
	}

	token.RevokedAt = &revokedAt
	s.tokens[id] = token

	return nil
}

func (s *fakeSessionStore) FindActiveRefreshTokensByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error) {
	var active []*entity.RefreshToken
	for _, token := range s.tokens {
		if token.UserID == userID && token.IsActive(now) {
			copied := token
			active = append(active, &copied)
		}
	}

	return active, nil
}

func (s *fakeSessionStore) DeleteInactiveRefreshTokens(ctx context.Context, userID uuid.UUID, now time.Time) error {
	for id, token := range s.tokens {
		if token.UserID == userID && !token.IsActive(now) {
			delete(s.tokens, id)
		}
	}

	return nil
}

func (s *fakeSessionStore) DeleteRefreshTokenByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	for id, token := range s.tokens {
		if token.UserID == userID && token.TokenHash == tokenHash {
			delete(s.tokens, id)

			return nil
		}
	}

	return repository.ErrRefreshTokenNotFound
}

// stubTokenCodec is a deterministic TokenService for concurrency tests: every
// generated value is unique and hashing is a plain prefix.
type stubTokenCodec struct {
	counter atomic.Int64
}

func (c *stubTokenCodec) CreateAccessToken(userID uuid.UUID, userName, email string) (string, error) {
	return "access-token", nil
}

func (c *stubTokenCodec) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	return nil, errors.New("not supported")
}

func (c *stubTokenCodec) GenerateRefreshTokenValue() (string, error) {
	return fmt.Sprintf("value-%d", c.counter.Add(1)), nil
}

func (c *stubTokenCodec) HashToken(value string) string {
	return "hash:" + value
}

func (c *stubTokenCodec) RefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

// Many goroutines present the same refresh token at once. Exactly one may win
// the rotation; every loser gets the inactive rejection and leaves no extra
// token behind.
func TestAccountService_Refresh_ConcurrentRotationSingleWinner(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, UserName: "alice", Email: "alice@example.com"}
	store := newFakeSessionStore(user)
	codec := &stubTokenCodec{}

	svc := NewAccountService(AccountServiceParams{
		TxManager:        store,
		UserRepo:         store,
		RefreshTokenRepo: store,
		Hasher:           mockSvc.NewMockPasswordHasher(t),
		TokenService:     codec,
		AuthMetrics:      metrics.NewAuthMetrics(),
		Logger:           newDiscardLogger(),
	})

	seed := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: codec.HashToken("shared-value"),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.RefreshTokenRepo().CreateRefreshToken(ctx, seed)
	}))

	const attempts = 16
	results := make([]error, attempts)

	var group errgroup.Group
	for i := 0; i < attempts; i++ {
		group.Go(func() error {
			_, err := svc.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "shared-value"})
			results[i] = err

			return nil
		})
	}
	require.NoError(t, group.Wait())

	var wins, losses int
	for _, err := range results {
		if err == nil {
			wins++

			continue
		}
		assert.True(t, errors.Is(err, usecase.ErrRefreshInactive), "loser must see the inactive rejection, got: %v", err)
		losses++
	}

	assert.Equal(t, 1, wins, "exactly one rotation may succeed")
	assert.Equal(t, attempts-1, losses)

	active, err := store.FindActiveRefreshTokensByUserID(ctx, userID, time.Now())
	require.NoError(t, err)
	assert.Len(t, active, 1, "one replacement token, no strays from rolled-back rotations")

	// The consumed token stays on record, revoked, until the next issuance
	// prunes it; a replay must keep answering inactive rather than unknown.
	_, err = svc.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "shared-value"})
	assert.True(t, errors.Is(err, usecase.ErrRefreshInactive))
}
