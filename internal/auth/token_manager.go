package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"minishop-storefront/internal/domain"
)

const sessionTTL = 24 * time.Hour

type tokenMeta struct {
	User      domain.User
	ExpiresAt time.Time
}

type tokenManager struct {
	mu     sync.RWMutex
	tokens map[string]tokenMeta
}

func newTokenManager() *tokenManager {
	return &tokenManager{tokens: make(map[string]tokenMeta)}
}

func (m *tokenManager) Issue(user domain.User) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.tokens[token] = tokenMeta{User: user, ExpiresAt: time.Now().Add(sessionTTL)}
	m.mu.Unlock()
	return token, nil
}

func (m *tokenManager) Validate(token string) (domain.User, bool) {
	m.mu.RLock()
	meta, ok := m.tokens[token]
	m.mu.RUnlock()
	if !ok {
		return domain.User{}, false
	}
	if time.Now().After(meta.ExpiresAt) {
		m.mu.Lock()
		delete(m.tokens, token)
		m.mu.Unlock()
		return domain.User{}, false
	}
	return meta.User, true
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
