package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

func newAuthService(t *testing.T, secret string) (AuthService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	log := newTestLogger(t)
	svc := NewAuthService(db, log, repos.NewAccessCodeRepo(db, log), secret, 24*time.Hour)
	return svc, db
}

func seedCode(t *testing.T, db *gorm.DB, code string, active bool) {
	t.Helper()
	row := types.AccessCode{ID: uuid.New(), Code: code, IsActive: active}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed access code: %v", err)
	}
}

func TestAuthLogin_ValidCodeIssuesVerifiableToken(t *testing.T) {
	svc, db := newAuthService(t, "test-secret")
	seedCode(t, db, "4192", true)
	ctx := context.Background()

	token, err := svc.Login(ctx, "  4192  ")
	if err != nil {
		t.Fatalf("login with padded valid code failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if err := svc.VerifyToken(token); err != nil {
		t.Fatalf("freshly issued token failed verification: %v", err)
	}
}

func TestAuthLogin_RejectsBadCodes(t *testing.T) {
	svc, db := newAuthService(t, "test-secret")
	seedCode(t, db, "4192", true)
	seedCode(t, db, "9999", false)
	ctx := context.Background()

	if _, err := svc.Login(ctx, ""); !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for empty code, got %v", err)
	}
	if _, err := svc.Login(ctx, "0000"); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for unknown code, got %v", err)
	}
	// A deactivated code is indistinguishable from an unknown one.
	if _, err := svc.Login(ctx, "9999"); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for inactive code, got %v", err)
	}
}

func TestAuthVerifyToken_RejectsForgeries(t *testing.T) {
	svc, db := newAuthService(t, "test-secret")
	seedCode(t, db, "4192", true)
	ctx := context.Background()

	token, err := svc.Login(ctx, "4192")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.VerifyToken("not-a-jwt"); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for garbage token, got %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if err := svc.VerifyToken(tampered); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for tampered token, got %v", err)
	}

	// A token signed under a different secret must not verify here.
	other, otherDB := newAuthService(t, "other-secret")
	seedCode(t, otherDB, "4192", true)
	foreign, err := other.Login(ctx, "4192")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.VerifyToken(foreign); !apierr.IsCode(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for foreign-signed token, got %v", err)
	}
}
