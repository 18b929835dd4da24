package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"example.com/signup/internal/catalog"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/registry"
)

func newTestRouter(opts ...domain.ServiceOption) http.Handler {
	store := registry.NewMemory(catalog.Default())
	service := domain.NewService(store, opts...)
	handler := NewHandler(service)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func listActivities(t *testing.T, router http.Handler) map[string]ActivityView {
	t.Helper()
	rr := do(router, http.MethodGet, "/activities")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var resp map[string]ActivityView
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func errorDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	return payload["detail"]
}

func TestListActivities(t *testing.T) {
	router := newTestRouter()

	resp := listActivities(t, router)
	if len(resp) != 3 {
		t.Fatalf("expected 3 activities got %d", len(resp))
	}
	for _, name := range []string{"Chess Club", "Programming Class", "Gym Class"} {
		act, ok := resp[name]
		if !ok {
			t.Fatalf("missing activity %q", name)
		}
		if act.Description == "" || act.Schedule == "" || act.MaxParticipants <= 0 {
			t.Fatalf("activity %q has incomplete fields: %+v", name, act)
		}
		if len(act.Participants) != 2 {
			t.Fatalf("activity %q expected 2 seeded participants got %d", name, len(act.Participants))
		}
	}
}

func TestSignupSuccess(t *testing.T) {
	router := newTestRouter()

	rr := do(router, http.MethodPost, "/activities/Chess%20Club/signup?email=new-student@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "new-student@mergington.edu") || !strings.Contains(resp.Message, "Chess Club") {
		t.Fatalf("confirmation message incomplete: %q", resp.Message)
	}

	activities := listActivities(t, router)
	roster := activities["Chess Club"].Participants
	if len(roster) != 3 || roster[2] != "new-student@mergington.edu" {
		t.Fatalf("signup not appended to roster: %v", roster)
	}
}

func TestSignupUnknownActivityReturns404(t *testing.T) {
	router := newTestRouter()

	rr := do(router, http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=student@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); !strings.Contains(strings.ToLower(detail), "not found") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestSignupMissingEmailReturns400(t *testing.T) {
	router := newTestRouter()

	rr := do(router, http.MethodPost, "/activities/Chess%20Club/signup")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestSignupWithEncodedEmail(t *testing.T) {
	router := newTestRouter()

	target := "/activities/Chess%20Club/signup?email=" + url.QueryEscape("test+user@mergington.edu")
	rr := do(router, http.MethodPost, target)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	activities := listActivities(t, router)
	roster := activities["Chess Club"].Participants
	if roster[len(roster)-1] != "test+user@mergington.edu" {
		t.Fatalf("encoded email mangled: %v", roster)
	}
}

func TestSignupDuplicateAllowedByDefault(t *testing.T) {
	router := newTestRouter()

	for i := 0; i < 2; i++ {
		rr := do(router, http.MethodPost, "/activities/Gym%20Class/signup?email=repeat@mergington.edu")
		if rr.Code != http.StatusOK {
			t.Fatalf("signup %d: expected 200 got %d", i, rr.Code)
		}
	}

	activities := listActivities(t, router)
	count := 0
	for _, email := range activities["Gym Class"].Participants {
		if email == "repeat@mergington.edu" {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected the known duplicate gap to persist, got %d entries", count)
	}
}

func TestSignupDuplicateRejectedWhenRuleEnabled(t *testing.T) {
	router := newTestRouter(domain.WithValidationRules(domain.ValidationRules{RejectDuplicates: true}))

	rr := do(router, http.MethodPost, "/activities/Gym%20Class/signup?email=once@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("first signup: expected 200 got %d", rr.Code)
	}
	rr = do(router, http.MethodPost, "/activities/Gym%20Class/signup?email=once@mergington.edu")
	if rr.Code != http.StatusConflict {
		t.Fatalf("duplicate signup: expected 409 got %d", rr.Code)
	}
}

func TestSignupCapacityEnforcedWhenRuleEnabled(t *testing.T) {
	router := newTestRouter(domain.WithValidationRules(domain.ValidationRules{EnforceCapacity: true}))

	// Chess Club seeds 2 of 12; fill the remaining 10 seats.
	for i := 0; i < 10; i++ {
		target := fmt.Sprintf("/activities/Chess%%20Club/signup?email=filler-%d@mergington.edu", i)
		rr := do(router, http.MethodPost, target)
		if rr.Code != http.StatusOK {
			t.Fatalf("filler %d: expected 200 got %d", i, rr.Code)
		}
	}

	rr := do(router, http.MethodPost, "/activities/Chess%20Club/signup?email=overflow@mergington.edu")
	if rr.Code != http.StatusConflict {
		t.Fatalf("over-capacity signup: expected 409 got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestUnregisterSuccess(t *testing.T) {
	router := newTestRouter()

	rr := do(router, http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "michael@mergington.edu") || !strings.Contains(resp.Message, "Chess Club") {
		t.Fatalf("confirmation message incomplete: %q", resp.Message)
	}

	activities := listActivities(t, router)
	for _, email := range activities["Chess Club"].Participants {
		if email == "michael@mergington.edu" {
			t.Fatal("unregistered email still on roster")
		}
	}
}

func TestUnregisterUnknownActivityReturns404(t *testing.T) {
	router := newTestRouter()

	rr := do(router, http.MethodDelete, "/activities/Nonexistent%20Activity/unregister?email=student@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); !strings.Contains(strings.ToLower(detail), "not found") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestUnregisterNotRegisteredReturns404(t *testing.T) {
	router := newTestRouter()

	rr := do(router, http.MethodDelete, "/activities/Chess%20Club/unregister?email=notregistered@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); !strings.Contains(strings.ToLower(detail), "not registered") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestSignupThenDoubleUnregister(t *testing.T) {
	router := newTestRouter()
	target := "/activities/Programming%20Class"

	rr := do(router, http.MethodPost, target+"/signup?email=workflow@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("signup: expected 200 got %d", rr.Code)
	}

	rr = do(router, http.MethodDelete, target+"/unregister?email=workflow@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("first unregister: expected 200 got %d", rr.Code)
	}

	rr = do(router, http.MethodDelete, target+"/unregister?email=workflow@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second unregister: expected 404 got %d", rr.Code)
	}
}

func TestUnregisterAllParticipants(t *testing.T) {
	router := newTestRouter()

	before := listActivities(t, router)["Chess Club"].Participants
	for _, email := range before {
		rr := do(router, http.MethodDelete, "/activities/Chess%20Club/unregister?email="+url.QueryEscape(email))
		if rr.Code != http.StatusOK {
			t.Fatalf("unregister %s: expected 200 got %d", email, rr.Code)
		}
	}

	after := listActivities(t, router)["Chess Club"].Participants
	if len(after) != 0 {
		t.Fatalf("expected empty roster got %v", after)
	}
}
