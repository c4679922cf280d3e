package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"study-forum-app/config/common"
	"study-forum-app/entity"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

const sessionTTL = time.Hour * 24

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"aud":     j.config.GetAppConfig(),
		"iss":     j.config.GetAppConfig(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func (j *JWT) GetUserIdFromToken(token string) (uint, error) {
	claims, err := j.VerifyToken(token)
	if err != nil {
		return 0, err
	}

	// numeric claims come back as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, jwt.ErrInvalidKey
	}

	return uint(userID), nil
}
