package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func authRouter(store UserStore, tokens *TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(store, tokens))

	r := gin.New()
	r.POST("/api/register", handler.Register)
	r.POST("/api/login", handler.Login)

	protected := r.Group("/api")
	protected.Use(RequireAuth(tokens))
	protected.GET("/protected", handler.Protected)

	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r := authRouter(newMockUserStore(), NewTokenService("test-secret", time.Hour))

	w := postJSON(r, "/api/register", `{"email":"a@x.com","name":"A","password":"p1secret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (body: %s)", w.Code, w.Body.String())
	}

	// Same email again is a user-visible 400, not a server error.
	w = postJSON(r, "/api/register", `{"email":"a@x.com","name":"A","password":"p1secret"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for duplicate email, got %d", w.Code)
	}
}

func TestRegisterEndpoint_InvalidBody(t *testing.T) {
	r := authRouter(newMockUserStore(), NewTokenService("test-secret", time.Hour))

	cases := map[string]string{
		"missing email":  `{"name":"A","password":"p1secret"}`,
		"bad email":      `{"email":"not-an-email","name":"A","password":"p1secret"}`,
		"short password": `{"email":"a@x.com","name":"A","password":"p"}`,
		"not json":       `date=today`,
	}
	for name, body := range cases {
		if w := postJSON(r, "/api/register", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", name, w.Code)
		}
	}
}

func TestLoginEndpoint_EndToEnd(t *testing.T) {
	r := authRouter(newMockUserStore(), NewTokenService("test-secret", time.Hour))

	if w := postJSON(r, "/api/register", `{"email":"a@x.com","name":"A","password":"p1secret"}`); w.Code != http.StatusCreated {
		t.Fatalf("register failed with %d", w.Code)
	}

	w := postJSON(r, "/api/login", `{"email":"a@x.com","password":"p1secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
	}

	var resp TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}

	// The issued token opens the protected endpoint.
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	pw := httptest.NewRecorder()
	r.ServeHTTP(pw, req)

	if pw.Code != http.StatusOK {
		t.Fatalf("expected status 200 on protected route, got %d", pw.Code)
	}
	var protected struct {
		User UserInfo `json:"user"`
	}
	if err := json.NewDecoder(pw.Body).Decode(&protected); err != nil {
		t.Fatalf("failed to decode protected response: %v", err)
	}
	if protected.User.Email != "a@x.com" {
		t.Errorf("expected claims email a@x.com, got %s", protected.User.Email)
	}
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	r := authRouter(newMockUserStore(), NewTokenService("test-secret", time.Hour))

	if w := postJSON(r, "/api/register", `{"email":"a@x.com","name":"A","password":"p1secret"}`); w.Code != http.StatusCreated {
		t.Fatalf("register failed with %d", w.Code)
	}

	// Unknown email and wrong password produce the same response shape.
	for name, body := range map[string]string{
		"unknown email":  `{"email":"b@x.com","password":"p1secret"}`,
		"wrong password": `{"email":"a@x.com","password":"wrong"}`,
	} {
		w := postJSON(r, "/api/login", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", name, w.Code)
		}
		if strings.Contains(w.Body.String(), "email") && strings.Contains(w.Body.String(), "not found") {
			t.Errorf("%s: response must not reveal whether the email exists", name)
		}
	}
}
