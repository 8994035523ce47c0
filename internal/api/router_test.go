package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peakform/fitness-api/internal/api/middleware"
	"github.com/peakform/fitness-api/internal/core/ports"
	"github.com/peakform/fitness-api/internal/core/service"
	"github.com/peakform/fitness-api/internal/infrastructure/memory"
)

type fakeAssistant struct{}

func (fakeAssistant) GeneratePlan(_ context.Context, _ json.RawMessage) (json.RawMessage, error) {
	return json.RawMessage(`{"weeklySchedule":[{"day":"monday","focus":"push"}]}`), nil
}

func (fakeAssistant) ChatReply(_ context.Context, _ string) (string, error) {
	return "drink more water", nil
}

type fakeQueue struct{ jobs []ports.CheckInJob }

func (q *fakeQueue) Enqueue(job ports.CheckInJob) { q.jobs = append(q.jobs, job) }

func newTestRouter() *echo.Echo {
	logger := zerolog.Nop()
	sessions := service.NewSessionManager(memory.NewSessionStore(), time.Hour)
	assistant := fakeAssistant{}

	return NewRouter(Deps{
		Auth:       service.NewAuthService(memory.NewUserStore(), sessions, logger),
		Fitness:    service.NewFitnessService(memory.NewFitnessStore(), assistant, logger),
		Reminders:  service.NewReminderService(&fakeQueue{}, logger),
		Assistant:  assistant,
		Sessions:   sessions,
		SessionTTL: time.Hour,
		Logger:     logger,
	})
}

func do(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func takeSessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body %q is not the JSON envelope: %v", rec.Body.String(), err)
	}
	return body.Error
}

// TestRouter walks the full HTTP surface against the in-memory stores. A
// single router is shared because the prometheus middleware registers its
// collectors globally.
func TestRouter(t *testing.T) {
	e := newTestRouter()

	t.Run("auth lifecycle", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/register", `{"username":"alice","email":"alice@example.com","password":"pw123"}`, nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("register status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "password") {
			t.Fatalf("register response leaks password material: %s", rec.Body.String())
		}
		if takeSessionCookie(rec) == nil {
			t.Fatalf("register should set the session cookie")
		}

		rec = do(e, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"wrong"}`, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("bad login status = %d", rec.Code)
		}
		if msg := errorMessage(t, rec); msg != "invalid credentials" {
			t.Fatalf("bad login message = %q", msg)
		}

		rec = do(e, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"pw123"}`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
		}
		cookie := takeSessionCookie(rec)
		if cookie == nil || !cookie.HttpOnly {
			t.Fatalf("login cookie = %+v", cookie)
		}

		rec = do(e, http.MethodGet, "/api/user", "", cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("current user status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "alice@example.com") {
			t.Fatalf("current user body = %s", rec.Body.String())
		}

		rec = do(e, http.MethodGet, "/api/user", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("anonymous current user status = %d", rec.Code)
		}

		rec = do(e, http.MethodPost, "/api/logout", "", cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("logout status = %d", rec.Code)
		}
		cleared := takeSessionCookie(rec)
		if cleared == nil || cleared.MaxAge >= 0 {
			t.Fatalf("logout should clear the cookie, got %+v", cleared)
		}

		// The old token is dead server-side even if a client replays it.
		rec = do(e, http.MethodGet, "/api/user", "", cookie)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("replayed cookie status = %d", rec.Code)
		}

		// Logging out again without a session is still a 200.
		rec = do(e, http.MethodPost, "/api/logout", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("idempotent logout status = %d", rec.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/register", `{"email":"dup@example.com","password":"pw"}`, nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("first register status = %d", rec.Code)
		}
		rec = do(e, http.MethodPost, "/api/register", `{"email":"dup@example.com","password":"other"}`, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("duplicate register status = %d, want 400", rec.Code)
		}
		if msg := errorMessage(t, rec); msg != "email already registered" {
			t.Fatalf("duplicate register message = %q", msg)
		}
	})

	t.Run("fitness log ownership", func(t *testing.T) {
		register := func(email string) *http.Cookie {
			rec := do(e, http.MethodPost, "/api/register", `{"email":"`+email+`","password":"pw"}`, nil)
			if rec.Code != http.StatusCreated {
				t.Fatalf("register %s status = %d", email, rec.Code)
			}
			return takeSessionCookie(rec)
		}
		first := register("first@example.com")
		second := register("second@example.com")

		rec := do(e, http.MethodPost, "/api/diet-logs", `{"meals":[{"name":"salad"}],"total_calories":300}`, first)
		if rec.Code != http.StatusOK {
			t.Fatalf("create diet log status = %d, body = %s", rec.Code, rec.Body.String())
		}

		rec = do(e, http.MethodGet, "/api/diet-logs", "", first)
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "salad") {
			t.Fatalf("owner listing = %d %s", rec.Code, rec.Body.String())
		}

		rec = do(e, http.MethodGet, "/api/diet-logs", "", second)
		if rec.Code != http.StatusOK {
			t.Fatalf("other user listing status = %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "salad") {
			t.Fatalf("diet log leaked across users: %s", rec.Body.String())
		}

		rec = do(e, http.MethodGet, "/api/diet-logs", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("anonymous listing status = %d", rec.Code)
		}
	})

	t.Run("workout plan generation", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/register", `{"email":"plans@example.com","password":"pw"}`, nil)
		cookie := takeSessionCookie(rec)

		rec = do(e, http.MethodPost, "/api/workout-plans", `{"fitnessGoal":"strength"}`, cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("generate status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "weeklySchedule") {
			t.Fatalf("generate body = %s", rec.Body.String())
		}

		// Regenerating leaves exactly one active plan.
		_ = do(e, http.MethodPost, "/api/workout-plans", "", cookie)
		rec = do(e, http.MethodGet, "/api/workout-plans", "", cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("list status = %d", rec.Code)
		}
		var plans []struct {
			Active bool `json:"active"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &plans); err != nil {
			t.Fatalf("list body: %v", err)
		}
		active := 0
		for _, p := range plans {
			if p.Active {
				active++
			}
		}
		if len(plans) != 2 || active != 1 {
			t.Fatalf("plans = %d, active = %d; want 2 plans with 1 active", len(plans), active)
		}
	})

	t.Run("chat", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/register", `{"email":"chat@example.com","password":"pw"}`, nil)
		cookie := takeSessionCookie(rec)

		rec = do(e, http.MethodPost, "/api/chat", `{"message":"how much protein?"}`, cookie)
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "drink more water") {
			t.Fatalf("chat = %d %s", rec.Code, rec.Body.String())
		}

		rec = do(e, http.MethodPost, "/api/chat", `{}`, cookie)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("empty chat message status = %d", rec.Code)
		}
	})

	t.Run("reminders", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/register", `{"email":"remind@example.com","password":"pw"}`, nil)
		cookie := takeSessionCookie(rec)

		rec = do(e, http.MethodPost, "/api/reminders", `{"phone":"+15551234567","time":"07:45"}`, cookie)
		if rec.Code != http.StatusCreated {
			t.Fatalf("schedule status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"hour":7`) {
			t.Fatalf("schedule body = %s", rec.Body.String())
		}

		rec = do(e, http.MethodPost, "/api/reminders", `{"phone":"+15551234567","time":"quarter past nine"}`, cookie)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("bad time status = %d", rec.Code)
		}
		if msg := errorMessage(t, rec); msg != "invalid reminder time" {
			t.Fatalf("bad time message = %q", msg)
		}
	})

	t.Run("health and metrics", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/health", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("liveness status = %d", rec.Code)
		}
		rec = do(e, http.MethodGet, "/health/ready", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("readiness status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "memory") {
			t.Fatalf("readiness body = %s", rec.Body.String())
		}
		rec = do(e, http.MethodGet, "/metrics", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("metrics status = %d", rec.Code)
		}
	})
}
