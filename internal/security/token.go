package security

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"csrhub/internal/models"
)

// SessionTTL is the fixed validity window of a session credential.
const SessionTTL = 24 * time.Hour

type SessionClaims struct {
	UserID       uint   `json:"uid"`
	Email        string `json:"email"`
	RoleID       uint   `json:"rid"`
	DepartmentID uint   `json:"did"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session credentials with a symmetric secret.
// Tokens are stateless: there is no server-side session store or
// revocation list.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

func (codec *Codec) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:       user.ID,
		Email:        user.Email,
		RoleID:       user.RoleID,
		DepartmentID: user.DepartmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(codec.secret)
}

// Verify returns the decoded claims only when the signature validates and
// the token has not expired. Every failure mode (malformed input, wrong
// algorithm, bad signature, expiry) yields nil so callers treat the result
// uniformly as "unauthenticated" without learning the cause.
func (codec *Codec) Verify(rawToken string) *SessionClaims {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return codec.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil
	}

	return claims
}
