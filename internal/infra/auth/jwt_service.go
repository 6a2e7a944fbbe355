package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"salondesk/config"
	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
	"salondesk/internal/domain/service"
	"salondesk/internal/errors"
)

const defaultSessionTTL = 8 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signed token replaces the old practice of handing the logged-in identity
// between screens through process environment variables.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// sessionClaims carries the session fields inside the token payload.
type sessionClaims struct {
	StaffID int64  `json:"staff_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
	}, nil
}

// Sign produces a compact HS256 token describing the session.
func (s *jwtService) Sign(session *entity.Session) (string, error) {
	if !session.Authenticated() {
		return "", errors.New("cannot sign an anonymous session")
	}

	now := time.Now()
	claims := sessionClaims{
		StaffID: session.StaffID,
		Name:    session.Name,
		IsAdmin: session.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify validates the token and rebuilds the session it describes.
// Any signature, expiry or claim problem maps to ErrSessionExpired.
func (s *jwtService) Verify(tokenString string) (*entity.Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrSessionExpired.WrapMessage("session token rejected")
	}

	// iat is optional to the parser, which only validates it when present,
	// so a signed token without one still arrives here.
	if claims.IssuedAt == nil {
		return nil, domainerrors.ErrSessionExpired.WrapMessage("session token has no issue time")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domainerrors.ErrSessionExpired.WrapMessage("session token has a malformed id")
	}

	return &entity.Session{
		ID:         sessionID,
		StaffID:    claims.StaffID,
		Name:       claims.Name,
		IsAdmin:    claims.IsAdmin,
		LoggedInAt: claims.IssuedAt.Time,
	}, nil
}
