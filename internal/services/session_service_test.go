package services

import (
	"errors"
	"testing"

	"resto_pos_backend/internal/models"
)

func TestLogin(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)

	resp, err := sessions.Login("1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.User.ID != "u-admin" {
		t.Errorf("expected u-admin, got %s", resp.User.ID)
	}
	if resp.AccessToken == "" {
		t.Error("expected a session token")
	}
	if cu := sessions.CurrentUser(); cu == nil || cu.ID != "u-admin" {
		t.Error("expected current user to be set")
	}
}

func TestLogin_UnknownPinLeavesSessionUnchanged(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)

	if _, err := sessions.Login("0000"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessions.CurrentUser() != nil {
		t.Error("failed login must not set a current user")
	}

	// Already logged in: a failed login keeps the existing session.
	if _, err := sessions.Login("5678"); err != nil {
		t.Fatal(err)
	}
	_, _ = sessions.Login("0000")
	if cu := sessions.CurrentUser(); cu == nil || cu.ID != "u-cashier" {
		t.Error("failed login must not clear the existing session")
	}
}

func TestLogout_ClearsSessionAndCart(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)
	cart := NewCartService(st)

	if _, err := sessions.Login("5678"); err != nil {
		t.Fatal(err)
	}
	if _, err := cart.AddToCart(AddToCartRequest{ProductID: "p-a"}); err != nil {
		t.Fatal(err)
	}

	sessions.Logout()

	if sessions.CurrentUser() != nil {
		t.Error("expected no current user after logout")
	}
	if len(cart.Cart().Items) != 0 {
		t.Error("logout must void the cart so it does not leak to the next cashier")
	}
}

func TestUpdateUserPin_Validation(t *testing.T) {
	cases := []struct {
		name    string
		pin     string
		wantErr error
	}{
		{"too short", "123", ErrInvalidPIN},
		{"non-numeric", "12a4", ErrInvalidPIN},
		{"too long", "12345", ErrInvalidPIN},
		{"taken by other user", "1234", ErrPINTaken},
		{"leading zeros ok", "0099", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newTestState()
			sessions := NewSessionService(st)

			err := sessions.UpdateUserPin("u-admin", "u-cashier", tc.pin)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			got := st.FindUser("u-cashier").PIN
			if tc.wantErr != nil && got != "5678" {
				t.Errorf("failed update must leave PIN unchanged, got %s", got)
			}
			if tc.wantErr == nil && got != tc.pin {
				t.Errorf("expected PIN %s, got %s", tc.pin, got)
			}
		})
	}
}

func TestUpdateUserPin_NonAdminIsRejected(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)

	err := sessions.UpdateUserPin("u-cashier", "u-cashier", "0001")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if st.FindUser("u-cashier").PIN != "5678" {
		t.Error("forbidden update must leave state unchanged")
	}
}

func TestUpdateUserPin_SameUserKeepsOwnPin(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)

	// Re-setting a user's own PIN is not a collision.
	if err := sessions.UpdateUserPin("u-admin", "u-admin", "1234"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAddUser(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)

	user, err := sessions.AddUser("u-admin", CreateUserRequest{Name: "Cara", PIN: "9999", Role: models.RoleCashier})
	if err != nil {
		t.Fatalf("add user failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated id")
	}
	if len(sessions.ListUsers()) != 3 {
		t.Errorf("expected 3 users, got %d", len(sessions.ListUsers()))
	}

	// Duplicate PIN is rejected.
	if _, err := sessions.AddUser("u-admin", CreateUserRequest{Name: "Dan", PIN: "9999", Role: models.RoleCashier}); !errors.Is(err, ErrPINTaken) {
		t.Errorf("expected ErrPINTaken, got %v", err)
	}

	// Non-admin actor is rejected with no mutation.
	if _, err := sessions.AddUser("u-cashier", CreateUserRequest{Name: "Eve", PIN: "7777", Role: models.RoleCashier}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if len(sessions.ListUsers()) != 3 {
		t.Error("forbidden add must leave the user list unchanged")
	}

	// Bad role is rejected.
	if _, err := sessions.AddUser("u-admin", CreateUserRequest{Name: "Fay", PIN: "4444", Role: "owner"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	st := newTestState()
	sessions := NewSessionService(st)

	if err := sessions.DeleteUser("u-cashier", "u-admin"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := sessions.DeleteUser("u-admin", "u-cashier"); err != nil {
		t.Fatal(err)
	}
	if len(sessions.ListUsers()) != 1 {
		t.Error("expected one user left")
	}
	// Absent id is a no-op.
	if err := sessions.DeleteUser("u-admin", "ghost"); err != nil {
		t.Fatal(err)
	}
}
