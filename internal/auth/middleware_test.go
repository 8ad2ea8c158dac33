package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// protectedEcho is a downstream handler that records whether it ran and
// what principal the gate put in the context.
func protectedEcho(t *testing.T, called *bool, gotID *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if id, ok := PrincipalIDFromContext(r.Context()); ok {
			*gotID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func gateRequest(t *testing.T, ts *TokenService, authorization string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	var called bool
	var gotID string
	handler := RequireAuth(ts)(protectedEcho(t, &called, &gotID))

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec, called, gotID
}

func TestRequireAuth_ValidToken(t *testing.T) {
	ts := newTestTokenService(t)
	token, _ := ts.Issue("principal-123")

	rec, called, gotID := gateRequest(t, ts, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Fatal("downstream handler was not invoked")
	}
	if gotID != "principal-123" {
		t.Errorf("principal in context = %q, want %q", gotID, "principal-123")
	}
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	ts := newTestTokenService(t)
	token, _ := ts.Issue("principal-123")

	rec, _, _ := gateRequest(t, ts, "bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

// TestRequireAuth_Rejections covers every non-success outcome: missing,
// malformed, tampered, expired. All must short-circuit with the same 401
// and never reach the downstream handler.
func TestRequireAuth_Rejections(t *testing.T) {
	ts := newTestTokenService(t)

	valid, _ := ts.Issue("principal-123")
	expired, _ := ts.IssueWithDuration("principal-123", -1*time.Second)

	cases := []struct {
		name          string
		authorization string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic " + valid},
		{"scheme only", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
		{"tampered signature", "Bearer " + valid[:len(valid)-3] + "xxx"},
		{"expired token", "Bearer " + expired},
	}

	var firstBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, called, _ := gateRequest(t, ts, tc.authorization)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if called {
				t.Fatal("downstream handler ran despite rejected token")
			}

			// Every rejection must look identical from outside.
			if firstBody == "" {
				firstBody = rec.Body.String()
			} else if rec.Body.String() != firstBody {
				t.Errorf("response body differs between rejection causes:\n%s\nvs\n%s",
					rec.Body.String(), firstBody)
			}
		})
	}
}
