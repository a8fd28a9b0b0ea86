package auth

import (
	"errors"
	"net/http"
	"strings"

	"minishop-storefront/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Capability is the opaque authentication boundary the core consumes: an
// is-authenticated flag plus the current-user record. Credential mechanics
// stay behind this interface.
type Capability interface {
	IsAuthenticated(r *http.Request) bool
	CurrentUser(r *http.Request) *domain.User
}

// Service issues bearer tokens on login and resolves them back to users.
type Service struct {
	tokens *tokenManager
}

func New() *Service {
	return &Service{tokens: newTokenManager()}
}

// Login issues a session token for the given identity. The storefront demo
// accepts any well-formed email; real credential checks live outside the core.
func (s *Service) Login(email, name string) (string, domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", domain.User{}, ErrInvalidCredentials
	}
	user := domain.User{
		ID:    "user-" + strings.ToLower(strings.SplitN(email, "@", 2)[0]),
		Email: email,
		Name:  strings.TrimSpace(name),
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// IsAuthenticated reports whether the request carries a valid session token.
func (s *Service) IsAuthenticated(r *http.Request) bool {
	return s.CurrentUser(r) != nil
}

// CurrentUser resolves the request's bearer token to its user record.
func (s *Service) CurrentUser(r *http.Request) *domain.User {
	token := bearerToken(r)
	if token == "" {
		return nil
	}
	user, ok := s.tokens.Validate(token)
	if !ok {
		return nil
	}
	return &user
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
