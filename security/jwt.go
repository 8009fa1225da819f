package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"direct-chat-api/apperror"
	"direct-chat-api/config/common"
	"direct-chat-api/entity"
)

const tokenLifetime = 30 * 24 * time.Hour

// Claims is the verified identity a session credential asserts.
type Claims struct {
	UserID string
	Phone  string
}

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

// GenerateToken issues a stateless session credential for a verified user.
// Multiple valid tokens may coexist for one user; there is no revocation.
func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"phone":   user.Phone,
		"aud":     "direct-chat-api",
		"iss":     "direct-chat-api",
		"iat":     now.Unix(),
		"exp":     now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

// Authenticate verifies signature and expiry and returns the bound identity.
func (j *JWT) Authenticate(token string) (Claims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, apperror.Auth("credential expired")
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, apperror.Auth("malformed credential")
		default:
			return Claims{}, apperror.Auth("invalid credential")
		}
	}

	mapClaims, ok := tokenParse.Claims.(jwt.MapClaims)
	if !ok || !tokenParse.Valid {
		return Claims{}, apperror.Auth("invalid credential")
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, apperror.Auth("malformed credential")
	}
	phone, _ := mapClaims["phone"].(string)

	return Claims{UserID: userID, Phone: phone}, nil
}
