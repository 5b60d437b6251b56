package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phishdash/phishdash-backend/internal/controller"
	"github.com/phishdash/phishdash-backend/internal/model"
	"github.com/phishdash/phishdash-backend/internal/service"
)

// MockUserRepo stores users in memory
type MockUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func (m *MockUserRepo) GetByEmail(email string) (*model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *MockUserRepo) Create(u *model.User) error {
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	m.users[u.Email] = u
	return nil
}

func newAuthController() *controller.AuthController {
	return &controller.AuthController{
		AuthService: &service.AuthService{
			UserRepo:  &MockUserRepo{users: map[string]*model.User{}},
			JWTSecret: "test-secret",
		},
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()

	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	w := httptest.NewRecorder()
	handler(w, req)

	resp := w.Result()
	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestSignupHandler(t *testing.T) {
	ctrl := newAuthController()

	resp, res := postJSON(t, ctrl.Signup, "/auth/signup", map[string]string{
		"email":    "new.user@corp.example",
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if token, _ := res["token"].(string); token == "" {
		t.Error("token missing from response")
	}
	if res["redirect_to"] != "/dashboard" {
		t.Errorf("redirect_to = %v", res["redirect_to"])
	}
}

func TestSignupHandlerDuplicate(t *testing.T) {
	ctrl := newAuthController()

	body := map[string]string{"email": "taken@corp.example", "password": "pw"}
	postJSON(t, ctrl.Signup, "/auth/signup", body)

	resp, _ := postJSON(t, ctrl.Signup, "/auth/signup", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGoogleSignupHandler(t *testing.T) {
	ctrl := newAuthController()

	claims := jwt.MapClaims{"email": "gmail.user@corp.example"}
	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-key"))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	resp, res := postJSON(t, ctrl.GoogleSignup, "/auth/google", map[string]string{
		"id_token": idToken,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if res["email"] != "gmail.user@corp.example" {
		t.Errorf("email = %v", res["email"])
	}
	if res["redirect_to"] != "/dashboard" {
		t.Errorf("redirect_to = %v", res["redirect_to"])
	}
}

func TestGoogleSignupHandlerBadToken(t *testing.T) {
	ctrl := newAuthController()

	resp, _ := postJSON(t, ctrl.GoogleSignup, "/auth/google", map[string]string{
		"id_token": "not-a-jwt",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
