package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/carelinehq/clinic-records/internal/models"
)

const TTL = 24 * time.Hour

var ErrInvalid = errors.New("invalid token")

// Claims is the decoded identity carried by an access token.
type Claims struct {
	UserID uint
	Role   string
	JTI    string
	Expiry time.Time
}

// Issue signs a token for the user with a unique jti so that individual
// tokens can be invalidated at logout.
func Issue(user *models.User, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"jti":  uuid.NewString(),
		"exp":  now.Add(TTL).Unix(),
		"iat":  now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies the signature and expiry and extracts the claims.
func Parse(tokenString, secret string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalid
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}

	sub, ok1 := mc["sub"].(float64)
	role, ok2 := mc["role"].(string)
	jti, _ := mc["jti"].(string)
	exp, ok3 := mc["exp"].(float64)
	if !ok1 || !ok2 || !ok3 {
		return nil, ErrInvalid
	}

	return &Claims{
		UserID: uint(sub),
		Role:   role,
		JTI:    jti,
		Expiry: time.Unix(int64(exp), 0),
	}, nil
}
