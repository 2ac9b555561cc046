package service

import (
	"errors"
	"time"

	apperrors "saha-servis/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SessionClaims несёт только ID профиля. Роль читается из БД на каждом запросе.
type SessionClaims struct {
	ProfileID uint64 `json:"profileId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateSessionToken(profileID uint64) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	GetSessionTTL() time.Duration
}

type jwtService struct {
	secretKey  string
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewJWTService(secretKey string, sessionTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *jwtService) GenerateSessionToken(profileID uint64) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) GetSessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *jwtService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		s.logger.Debug("Ошибка парсинга или проверки подписи токена", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ProfileID == 0 {
		s.logger.Warn("Токен невалиден или не удалось извлечь claims")
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
