// apps/go-server/internal/httpserver/player.go
//
// Anonymous player identity.
// A player id is minted on first contact and kept in an HttpOnly cookie as an
// HS256 JWT (subject = player id) so clients cannot claim someone else's
// daily result by editing the cookie. Authorization: Bearer <token> is
// accepted too, for non-browser clients.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var errInvalidPlayerToken = errors.New("invalid player token")

// playerID returns the caller's player id, issuing a new signed cookie when
// none (or an invalid one) was presented.
func (s *Server) playerID(w http.ResponseWriter, r *http.Request) string {
	if tok := bearerOrCookie(r, s.cfg.Player.CookieName); tok != "" {
		if id, err := s.parsePlayerToken(tok); err == nil {
			return id
		}
	}
	id := genID()
	tok, exp, err := s.signPlayerToken(id)
	if err != nil {
		log.Warn().Err(err).Msg("sign player token")
		return id
	}
	s.setPlayerCookie(w, tok, exp)
	return id
}

// signPlayerToken creates an HS256 JWT for id valid for Player.TTLDays.
func (s *Server) signPlayerToken(id string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(time.Duration(s.cfg.Player.TTLDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.Player.Secret))
	return ss, exp, err
}

// parsePlayerToken verifies tok and returns its subject.
func (s *Server) parsePlayerToken(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Player.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !t.Valid || claims.Subject == "" {
		return "", errInvalidPlayerToken
	}
	return claims.Subject, nil
}

// setPlayerCookie writes the player token cookie with appropriate security attributes.
func (s *Server) setPlayerCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := s.cfg.Player.Secure
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Player.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the named cookie.
func bearerOrCookie(r *http.Request, cookie string) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
