// internal/controller/auth_controller.go
package controller

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/phishdash/phishdash-backend/internal/service"
)

type AuthController struct {
    AuthService *service.AuthService
}

// Signup creates an email/password account. Failures are logged and answered
// with a generic message; the client shows an alert and stays put.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Email    string `json:"email"`
        Password string `json:"password"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    session, err := c.AuthService.CreateAccount(body.Email, body.Password)
    if err != nil {
        log.Println("⚠️ Error signing up:", err)
        http.Error(w, "Error signing up", http.StatusBadRequest)
        return
    }

    json.NewEncoder(w).Encode(session)
}

// GoogleSignup exchanges a federated ID token for a first-party session.
func (c *AuthController) GoogleSignup(w http.ResponseWriter, r *http.Request) {
    var body struct {
        IDToken string `json:"id_token"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    session, err := c.AuthService.FederatedSignIn(body.IDToken)
    if err != nil {
        log.Println("⚠️ Error signing up with Google:", err)
        http.Error(w, "Error signing up with Google", http.StatusBadRequest)
        return
    }

    json.NewEncoder(w).Encode(session)
}
