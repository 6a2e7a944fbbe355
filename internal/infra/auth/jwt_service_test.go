package auth

import (
	"testing"
	"time"

	"salondesk/config"
	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-session-secret"
	if ttl > 0 {
		cfg.Auth = &config.AuthConfig{SessionTTL: ttl}
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testSession() *entity.Session {
	return &entity.Session{
		ID:         uuid.New(),
		StaffID:    42,
		Name:       "Jane Doe",
		IsAdmin:    true,
		LoggedInAt: time.Now(),
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_SignAndVerify(t *testing.T) {
	svc := newTestTokenService(t, 0)
	session := testSession()

	token, err := svc.Sign(session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	restored, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, session.ID, restored.ID)
	assert.Equal(t, session.StaffID, restored.StaffID)
	assert.Equal(t, session.Name, restored.Name)
	assert.True(t, restored.IsAdmin)
	assert.True(t, restored.Authenticated())
}

func TestJWTService_RefusesAnonymousSession(t *testing.T) {
	svc := newTestTokenService(t, 0)

	_, err := svc.Sign(nil)
	assert.Error(t, err)

	_, err = svc.Sign(&entity.Session{})
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, 0)

	token, err := svc.Sign(testSession())
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestTokenService(t, 0)

	other := &config.Config{}
	other.SecretKey.Session = "a-different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.Sign(testSession())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, time.Nanosecond)

	token, err := svc.Sign(testSession())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestJWTService_RejectsTokenWithoutIssueTime(t *testing.T) {
	svc := newTestTokenService(t, 0)

	// Correctly signed with the service secret, but carrying no iat claim.
	claims := sessionClaims{
		StaffID: 42,
		Name:    "Jane Doe",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, 0)

	_, err := svc.Verify("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}
