package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-care-registry/internal/domain/apperr"
	"pet-care-registry/internal/platform/logger"
)

func TestError_StatusByKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{apperr.InvalidPayload("email is required"), http.StatusBadRequest, "invalid_payload"},
		{apperr.NotFound("pet p1 not found"), http.StatusNotFound, "not_found"},
		{apperr.Unauthorized("veterinarians only"), http.StatusUnauthorized, "unauthorized"},
		{errors.New("disk full"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)

		Error(rec, req, logger.Nop(), tc.err)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var body ErrorBody
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Error != tc.kind {
			t.Fatalf("expected kind %q, got %q", tc.kind, body.Error)
		}
	}
}

func TestError_InternalHidesReason(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, httptest.NewRequest(http.MethodGet, "/x", nil), logger.Nop(), errors.New("password=hunter2"))

	if strings.Contains(rec.Body.String(), "hunter2") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

func TestDecode_RejectsMalformedAndUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":`))
	if err := Decode(req, &dst); !errors.Is(err, apperr.ErrInvalidPayload) {
		t.Fatalf("expected InvalidPayload for malformed json, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"Rex","color":"brown"}`))
	if err := Decode(req, &dst); !errors.Is(err, apperr.ErrInvalidPayload) {
		t.Fatalf("expected InvalidPayload for unknown field, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"Rex"}`))
	if err := Decode(req, &dst); err != nil || dst.Name != "Rex" {
		t.Fatalf("expected decode ok, got %v %+v", err, dst)
	}
}
