package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"erp-reporting-backend/internal/models"
)

const sessionCookie = "erp_session"

// Sessions issues and verifies the signed session cookie. The cookie carries
// only the user id; the user record is reloaded on every request so role and
// database changes apply immediately.
type Sessions struct {
	secret []byte
	maxAge time.Duration
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), maxAge: 24 * time.Hour}
}

func (s *Sessions) Issue(c *gin.Context, userID uuid.UUID) error {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.maxAge)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, token, int(s.maxAge.Seconds()), "/", "", false, true)
	return nil
}

func (s *Sessions) Clear(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// UserID parses and verifies the session cookie.
func (s *Sessions) UserID(c *gin.Context) (uuid.UUID, bool) {
	raw, err := c.Cookie(sessionCookie)
	if err != nil || raw == "" {
		return uuid.Nil, false
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	claims := token.Claims.(*jwt.RegisteredClaims)
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CurrentUser returns the authenticated user set by the middleware.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
