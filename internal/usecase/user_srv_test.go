package usecase

import (
	"context"
	"strings"
	"testing"

	"solar-shop/internal/data/entity"
	"solar-shop/internal/dto/request"
	"solar-shop/pkg/utils"
)

func seedUser(t *testing.T, repo interface {
	Create(ctx context.Context, user *entity.User) error
}, username string, role entity.UserRole) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		FullName:     "User " + username,
		Role:         role,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestDeleteUserGuards(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, testLogger())

	admin := seedUser(t, repo.User, "admin", entity.RoleSuperAdmin) // id 1
	second := seedUser(t, repo.User, "second", entity.RoleSuperAdmin)

	// The primary admin account is undeletable.
	if err := svc.DeleteUser(context.Background(), admin.ID, second.ID); err == nil ||
		!strings.Contains(err.Error(), "primary admin") {
		t.Errorf("expected primary admin guard, got %v", err)
	}

	// Nobody deletes themselves.
	if err := svc.DeleteUser(context.Background(), second.ID, second.ID); err == nil ||
		!strings.Contains(err.Error(), "own account") {
		t.Errorf("expected self-delete guard, got %v", err)
	}
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	repo := newTestRepository()
	userSvc := NewUserService(repo, testLogger())
	authSvc := NewAuthService(repo, testConfig(), testLogger())

	seedUser(t, repo.User, "admin", entity.RoleSuperAdmin) // id 1, protected

	auth, err := authSvc.Register(context.Background(), registerReq("victim", "victim@example.com"), ClientInfo{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := userSvc.DeleteUser(context.Background(), auth.User.ID, 1); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	session, err := repo.Session.FindValidSession(context.Background(), auth.Token)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if session != nil {
		t.Error("deleted user still has a live session")
	}
}

func TestUpdateUserChangesRole(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, testLogger())

	user := seedUser(t, repo.User, "writer", entity.RoleCustomer)

	role := "blog_editor"
	updated, err := svc.UpdateUser(context.Background(), user.ID, &request.UserUpdateRequest{Role: &role})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Role != entity.RoleBlogEditor {
		t.Errorf("expected blog_editor, got %s", updated.Role)
	}
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, testLogger())

	seedUser(t, repo.User, "alice", entity.RoleCustomer)
	bob := seedUser(t, repo.User, "bob", entity.RoleCustomer)

	taken := "alice@example.com"
	_, err := svc.UpdateUser(context.Background(), bob.ID, &request.UserUpdateRequest{Email: &taken})
	if err == nil || !strings.Contains(err.Error(), "email already exists") {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	// Re-submitting the user's own email is not a conflict.
	own := "bob@example.com"
	if _, err := svc.UpdateUser(context.Background(), bob.ID, &request.UserUpdateRequest{Email: &own}); err != nil {
		t.Errorf("own email rejected: %v", err)
	}
}

func TestUpdateProfileIgnoresPrivilegedFields(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, testLogger())

	user := seedUser(t, repo.User, "alice", entity.RoleCustomer)

	name := "Alice Cooper"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &request.ProfileUpdateRequest{FullName: &name})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.FullName != "Alice Cooper" {
		t.Errorf("expected updated name, got %s", updated.FullName)
	}
	if updated.Role != entity.RoleCustomer {
		t.Errorf("profile update changed role to %s", updated.Role)
	}
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	repo := newTestRepository()
	svc := NewUserService(repo, testLogger())

	user := seedUser(t, repo.User, "alice", entity.RoleCustomer)

	err := svc.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret1",
		ConfirmPassword: "newsecret1",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Errorf("expected invalid credentials, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret1",
		ConfirmPassword: "newsecret1",
	}); err != nil {
		t.Fatalf("change password: %v", err)
	}

	stored, err := repo.User.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if !utils.CheckPasswordHash("newsecret1", stored.PasswordHash) {
		t.Error("new password does not verify")
	}
}
