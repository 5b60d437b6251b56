// internal/service/auth_service.go
package service

import (
    "log"
    "strings"

    appErrors "github.com/phishdash/phishdash-backend/internal/errors"
    "github.com/phishdash/phishdash-backend/internal/model"
    "github.com/phishdash/phishdash-backend/internal/repository"
    "github.com/phishdash/phishdash-backend/internal/util"
)

// PostAuthRoute is where the client navigates after a successful signup.
const PostAuthRoute = "/dashboard"

// Session is the result of a successful account creation or federated
// sign-in.
type Session struct {
    UserID     int    `json:"user_id"`
    Email      string `json:"email"`
    Token      string `json:"token"`
    RedirectTo string `json:"redirect_to"`
}

type AuthService struct {
    UserRepo  repository.UserRepositoryInterface
    JWTSecret string
}

// CreateAccount registers a new email/password user and returns a session.
func (s *AuthService) CreateAccount(email, password string) (*Session, error) {
    email = strings.TrimSpace(email)
    if email == "" || password == "" {
        return nil, appErrors.NewAuthFault("email and password are required")
    }

    existing, err := s.UserRepo.GetByEmail(email)
    if err != nil {
        return nil, appErrors.NewAuthFault(err.Error())
    }
    if existing != nil {
        return nil, appErrors.NewAuthFault("email already registered")
    }

    hash, err := util.HashPassword(password)
    if err != nil {
        return nil, appErrors.NewAuthFault(err.Error())
    }

    u := &model.User{
        Email:        email,
        PasswordHash: hash,
        Provider:     "password",
    }
    if err := s.UserRepo.Create(u); err != nil {
        return nil, appErrors.NewAuthFault(err.Error())
    }

    return s.session(u)
}

// FederatedSignIn accepts a federated provider's ID token, creating the user
// on first sight, and returns a first-party session.
func (s *AuthService) FederatedSignIn(idToken string) (*Session, error) {
    email, err := util.FederatedEmail(idToken)
    if err != nil {
        return nil, appErrors.NewAuthFault("invalid provider token")
    }

    u, err := s.UserRepo.GetByEmail(email)
    if err != nil {
        return nil, appErrors.NewAuthFault(err.Error())
    }
    if u == nil {
        u = &model.User{
            Email:    email,
            Provider: "google",
        }
        if err := s.UserRepo.Create(u); err != nil {
            return nil, appErrors.NewAuthFault(err.Error())
        }
        log.Println("✅ Created federated account for:", email)
    }

    return s.session(u)
}

func (s *AuthService) session(u *model.User) (*Session, error) {
    token, err := util.GenerateJWT(u.ID, u.Email, s.JWTSecret)
    if err != nil {
        return nil, appErrors.NewAuthFault(err.Error())
    }
    return &Session{
        UserID:     u.ID,
        Email:      u.Email,
        Token:      token,
        RedirectTo: PostAuthRoute,
    }, nil
}
