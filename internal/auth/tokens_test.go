package auth

import (
	"errors"
	"testing"
	"time"

	"newskoop/newsroom/internal/common"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	return NewTokenService("test-secret", 15*time.Minute, time.Hour, common.NewCacheService(60, 120))
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	claims, err := svc.VerifyAccess(access)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("uid = %s, want user-1", claims.UserID)
	}

	if _, err := svc.VerifyRefresh(refresh); err != nil {
		t.Errorf("VerifyRefresh: %v", err)
	}
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if _, err := svc.VerifyAccess(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh as access: got %v, want ErrInvalidToken", err)
	}
	if _, err := svc.VerifyRefresh(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access as refresh: got %v, want ErrInvalidToken", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	svc := newTestTokenService(t)
	other := NewTokenService("other-secret", 15*time.Minute, time.Hour, common.NewCacheService(60, 120))

	access, _, err := other.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if _, err := svc.VerifyAccess(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestRefreshMintsNewAccess(t *testing.T) {
	svc := newTestTokenService(t)

	_, refresh, err := svc.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	access, err := svc.Refresh(refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	claims, err := svc.VerifyAccess(access)
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("uid = %s, want user-1", claims.UserID)
	}
}

func TestRevokedRefreshRejected(t *testing.T) {
	svc := newTestTokenService(t)

	_, refresh, err := svc.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	if err := svc.Revoke(refresh); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := svc.VerifyRefresh(refresh); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("got %v, want ErrTokenRevoked", err)
	}
	if _, err := svc.Refresh(refresh); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("Refresh of revoked: got %v, want ErrTokenRevoked", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute, time.Hour, common.NewCacheService(60, 120))

	access, _, err := svc.IssuePair("user-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if _, err := svc.VerifyAccess(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}
