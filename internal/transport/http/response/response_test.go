package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baechuer/account-service/internal/domain"
	appctx "github.com/baechuer/account-service/internal/pkg/context"
)

func TestWriteError_StatusByKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ErrMissingField("email"), http.StatusBadRequest, "missing_field"},
		{"auth", domain.ErrInvalidCredentials(), http.StatusUnauthorized, "invalid_credentials"},
		{"forbidden", domain.ErrInsufficientRole("admin"), http.StatusForbidden, "insufficient_role"},
		{"not_found", domain.ErrUserNotFound(), http.StatusNotFound, "user_not_found"},
		{"conflict", domain.ErrEmailAlreadyExists(), http.StatusConflict, "email_already_exists"},
		{"infrastructure", domain.ErrDBUnavailable(nil), http.StatusServiceUnavailable, "db_unavailable"},
		{"non_domain", http.ErrBodyNotAllowed, http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)

			WriteError(rr, req, tc.err)

			if rr.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rr.Code)
			}

			var body ErrorBody
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, body.Error.Code)
			}
		})
	}
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(appctx.WithRequestID(req.Context(), "req-123"))

	WriteError(rr, req, domain.ErrUserNotFound())

	var body ErrorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.RequestID != "req-123" {
		t.Fatalf("expected request id, got %q", body.Error.RequestID)
	}
}

func TestOK_WrapsInDataEnvelope(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	OK(rr, map[string]string{"hello": "world"})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data["hello"] != "world" {
		t.Fatalf("expected data envelope, got %s", rr.Body.String())
	}
}

func TestCreatedAndNoContent(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Created(rr, map[string]int{"id": 1})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	NoContent(rr)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}

func TestDecodeJSON_Valid(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"a":1}`))

	var dst struct {
		A int `json:"a"`
	}
	if err := DecodeJSON(req, &dst); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if dst.A != 1 {
		t.Fatalf("expected a=1, got %d", dst.A)
	}
}

func TestDecodeJSON_Malformed_InvalidJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{`))

	var dst struct{}
	err := DecodeJSON(req, &dst)
	if !domain.Is(err, "invalid_json") {
		t.Fatalf("expected invalid_json, got %v", err)
	}
}

func TestDecodeJSON_TrailingValues_InvalidJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}{}`))

	var dst struct{}
	err := DecodeJSON(req, &dst)
	if !domain.Is(err, "invalid_json") {
		t.Fatalf("expected invalid_json, got %v", err)
	}
}
