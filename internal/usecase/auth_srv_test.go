package usecase

import (
	"context"
	"strings"
	"testing"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/dto/request"
)

func registerReq(username, email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FullName:        "Test User",
	}
}

func TestRegisterCreatesCustomerWithSession(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	auth, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"), ClientInfo{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if auth.User.Role != entity.RoleCustomer {
		t.Errorf("expected customer role, got %s", auth.User.Role)
	}
	if auth.Token == "" {
		t.Error("expected a session token after register")
	}

	session, err := repo.Session.FindValidSession(context.Background(), auth.Token)
	if err != nil || session == nil {
		t.Fatalf("expected valid session for token, got session=%v err=%v", session, err)
	}
	if session.UserID != auth.User.ID {
		t.Errorf("session belongs to user %d, want %d", session.UserID, auth.User.ID)
	}
}

func TestRegisterDuplicateIdentifiers(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	if _, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"), ClientInfo{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(context.Background(), registerReq("alice", "other@example.com"), ClientInfo{})
	if err == nil || !strings.Contains(err.Error(), "username already exists") {
		t.Errorf("expected username conflict, got %v", err)
	}

	_, err = svc.Register(context.Background(), registerReq("bob", "alice@example.com"), ClientInfo{})
	if err == nil || !strings.Contains(err.Error(), "email already exists") {
		t.Errorf("expected email conflict, got %v", err)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	req := registerReq("alice", "alice@example.com")
	req.ConfirmPassword = "different"

	_, err := svc.Register(context.Background(), req, ClientInfo{})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	if _, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"), ClientInfo{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, identifier := range []string{"alice", "alice@example.com"} {
		auth, err := svc.Login(context.Background(), &request.LoginRequest{
			Identifier: identifier,
			Password:   "secret123",
		}, ClientInfo{})
		if err != nil {
			t.Errorf("login with %q: %v", identifier, err)
			continue
		}
		if auth.Token == "" {
			t.Errorf("login with %q: expected a session token", identifier)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	if _, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"), ClientInfo{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown user must be indistinguishable.
	for _, tc := range []struct{ identifier, password string }{
		{"alice", "wrong"},
		{"nobody", "secret123"},
	} {
		_, err := svc.Login(context.Background(), &request.LoginRequest{
			Identifier: tc.identifier,
			Password:   tc.password,
		}, ClientInfo{})
		if err == nil || err.Error() != "invalid credentials" {
			t.Errorf("login %q/%q: expected invalid credentials, got %v", tc.identifier, tc.password, err)
		}
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	auth, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"), ClientInfo{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), auth.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	session, err := repo.Session.FindValidSession(context.Background(), auth.Token)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if session != nil {
		t.Error("expected revoked session to be invalid")
	}
}

func TestCurrentUserStripsPassword(t *testing.T) {
	repo := newTestRepository()
	svc := NewAuthService(repo, testConfig(), testLogger())

	auth, err := svc.Register(context.Background(), registerReq("alice", "alice@example.com"), ClientInfo{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), auth.User.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected alice, got %s", user.Username)
	}
}
