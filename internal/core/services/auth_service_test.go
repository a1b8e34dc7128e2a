package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opcare/report-triage-service/internal/core/domain"
	"github.com/opcare/report-triage-service/internal/core/services"
	"github.com/opcare/report-triage-service/test/mocks"
)

func newAuthFixture(t *testing.T) (*services.AuthService, *mocks.MockIdentityRepository, *services.TokenDomain, *services.TokenDomain) {
	t.Helper()
	repo := mocks.NewMockIdentityRepository()
	userTokens := services.NewTokenDomain("user", []byte("user-secret"))
	doctorTokens := services.NewTokenDomain("doctor", []byte("doctor-secret"))
	svc := services.NewAuthService(repo, repo, userTokens, doctorTokens)
	return svc, repo, userTokens, doctorTokens
}

func seedUserWithPassword(t *testing.T, repo *mocks.MockIdentityRepository, username, password string) domain.User {
	t.Helper()
	hash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := mocks.NewTestUser("user-1", username)
	user.Password = hash
	repo.SeedUser(user)
	return user
}

func TestSignInUserSuccess(t *testing.T) {
	svc, repo, userTokens, doctorTokens := newAuthFixture(t)
	user := seedUserWithPassword(t, repo, "alice", "pass1234")

	token, err := svc.SignInUser(context.Background(), "alice", "pass1234")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	subjectID, err := userTokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if subjectID != user.ID {
		t.Errorf("expected subject %q, got %q", user.ID, subjectID)
	}

	// The user token must be meaningless to the doctor/admin domain.
	if _, err := doctorTokens.Verify(token); err == nil {
		t.Error("expected user token to fail doctor-domain verification")
	}
}

func TestSignInUserUnknownUsername(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.SignInUser(context.Background(), "nobody", "pass1234")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSignInUserWrongPassword(t *testing.T) {
	svc, repo, _, _ := newAuthFixture(t)
	seedUserWithPassword(t, repo, "alice", "pass1234")

	_, err := svc.SignInUser(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestSignInDoctorSuccess(t *testing.T) {
	svc, repo, userTokens, doctorTokens := newAuthFixture(t)

	hash, err := services.HashPassword("doctorpass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	doctor := mocks.NewTestDoctor("doc-1", "drbones")
	doctor.Password = hash
	repo.SeedDoctor(doctor)

	token, err := svc.SignInDoctor(context.Background(), "drbones", "doctorpass")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	subjectID, err := doctorTokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if subjectID != doctor.ID {
		t.Errorf("expected subject %q, got %q", doctor.ID, subjectID)
	}
	if _, err := userTokens.Verify(token); err == nil {
		t.Error("expected doctor token to fail user-domain verification")
	}
}

func TestSignInDoctorUnknownUsername(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.SignInDoctor(context.Background(), "nobody", "pass1234")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIssuedTokenExpiresWithinTTL(t *testing.T) {
	// Verifies the TTL is honored by issuing through the same domain with a
	// negative duration; SignIn uses a fixed 1h TTL internally.
	tokens := services.NewTokenDomain("user", []byte("user-secret"))
	expired, err := tokens.Issue("subject", -time.Second)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tokens.Verify(expired); err == nil {
		t.Fatal("expected verification of an expired token to fail")
	}
}
