package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"newskoop/newsroom/internal/common"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	revokedKeyPrefix = "auth:revoked:"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

// Claims is the JWT payload for both access and refresh tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	TokenType string `json:"typ"`
}

// TokenService issues and verifies the bearer token pair. Revoked refresh
// tokens are tracked by JTI in the cache (Redis in production) until their
// natural expiry.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	revoked    common.CacheInterface
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, revoked common.CacheInterface) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		revoked:    revoked,
	}
}

// IssuePair mints an access and a refresh token for the user.
func (s *TokenService) IssuePair(userID string) (access string, refresh string, err error) {
	access, err = s.sign(userID, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.sign(userID, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// VerifyAccess parses and validates an access token.
func (s *TokenService) VerifyAccess(token string) (*Claims, error) {
	return s.verify(token, tokenTypeAccess)
}

// VerifyRefresh parses and validates a refresh token, rejecting revoked ones.
func (s *TokenService) VerifyRefresh(token string) (*Claims, error) {
	claims, err := s.verify(token, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if _, found := s.revoked.Get(revokedKeyPrefix + claims.ID); found {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Refresh mints a new access token from a valid refresh token.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return s.sign(claims.UserID, tokenTypeAccess, s.accessTTL)
}

// Revoke blacklists a refresh token for the remainder of its lifetime.
func (s *TokenService) Revoke(refreshToken string) error {
	claims, err := s.verify(refreshToken, tokenTypeRefresh)
	if err != nil {
		return err
	}

	ttl := s.refreshTTL
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	s.revoked.Set(revokedKeyPrefix+claims.ID, true, ttl)
	return nil
}

func (s *TokenService) sign(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) verify(token, wantType string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
