package dto

import (
	"testing"

	"github.com/baechuer/account-service/internal/domain"
)

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}

func TestRegisterRequest_Valid(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{FullName: "Alice", Email: "a@b.com", Password: "Secret123"}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestRegisterRequest_MissingEmail(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{FullName: "Alice", Password: "Secret123"}
	requireErrCode(t, req.Validate(), "missing_field")
}

func TestRegisterRequest_BadEmail(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{FullName: "Alice", Email: "not-an-email", Password: "Secret123"}
	requireErrCode(t, req.Validate(), "invalid_field")
}

func TestRegisterRequest_ShortPassword_WeakPassword(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{FullName: "Alice", Email: "a@b.com", Password: "Ab1"}
	requireErrCode(t, req.Validate(), "weak_password")
}

func TestRegisterRequest_NoDigit_WeakPassword(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{FullName: "Alice", Email: "a@b.com", Password: "Secretabc"}
	requireErrCode(t, req.Validate(), "weak_password")
}

func TestRegisterRequest_NoUpper_WeakPassword(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{FullName: "Alice", Email: "a@b.com", Password: "secret123"}
	requireErrCode(t, req.Validate(), "weak_password")
}

func TestLoginRequest_MissingPassword(t *testing.T) {
	t.Parallel()

	req := LoginRequest{Email: "a@b.com"}
	requireErrCode(t, req.Validate(), "missing_field")
}

func TestLoginRequest_AnyPasswordShapeAccepted(t *testing.T) {
	t.Parallel()

	// Login does not enforce strength; the stored hash decides.
	req := LoginRequest{Email: "a@b.com", Password: "x"}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestUpdateProfileRequest_AllEmpty_Valid(t *testing.T) {
	t.Parallel()

	req := UpdateProfileRequest{}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestUpdateProfileRequest_BadEmail(t *testing.T) {
	t.Parallel()

	req := UpdateProfileRequest{Email: "nope"}
	requireErrCode(t, req.Validate(), "invalid_field")
}

func TestPasswordChangeRequest_WeakNewPassword(t *testing.T) {
	t.Parallel()

	req := PasswordChangeRequest{OldPassword: "old", NewPassword: "weak"}
	requireErrCode(t, req.Validate(), "weak_password")
}

func TestPasswordChangeRequest_Valid(t *testing.T) {
	t.Parallel()

	req := PasswordChangeRequest{OldPassword: "old", NewPassword: "NewSecret1"}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}
