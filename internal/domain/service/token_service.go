package service

import "salondesk/internal/domain/entity"

// TokenService signs and verifies the session hand-off token. The token lets
// one screen pass an authenticated session to another without shared process
// state; it carries the staff id and the admin flag captured at login.
type TokenService interface {
	// Sign produces a compact signed token for the given session.
	Sign(session *entity.Session) (string, error)

	// Verify validates a token's signature and expiry and rebuilds the
	// session it describes.
	Verify(token string) (*entity.Session, error)
}
