// Package identity wraps the external identity provider. ID tokens are HS256
// JWTs signed with the project secret (the Supabase/GoTrue scheme); account
// administration goes through the provider's REST admin API with a service key.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrEmailExists is returned by CreateUser when the address is already
// registered with the provider.
var ErrEmailExists = errors.New("identity: email already registered")

// Token is the verified identity extracted from an ID token.
type Token struct {
	UID   string
	Email string
}

// Provider verifies ID tokens and manages provider accounts.
type Provider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Token, error)
	CreateUser(ctx context.Context, email, password string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (string, error)
}

type idTokenClaims struct {
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

// Service is the production Provider implementation.
type Service struct {
	baseURL    string
	serviceKey string
	jwtSecret  []byte
	httpClient *http.Client
}

func New(baseURL, serviceKey, jwtSecret string) *Service {
	return &Service{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		jwtSecret:  []byte(jwtSecret),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyIDToken validates an ID token and returns the subject and email.
func (s *Service) VerifyIDToken(ctx context.Context, idToken string) (*Token, error) {
	token, err := jwtlib.ParseWithClaims(idToken, &idTokenClaims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*idTokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid id token")
	}
	return &Token{UID: claims.Subject, Email: claims.Email}, nil
}

type adminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateUser registers an email/password account with the provider and
// returns its UID. Returns ErrEmailExists when the address is taken.
func (s *Service) CreateUser(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":         email,
		"password":      password,
		"email_confirm": true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusConflict {
		return "", ErrEmailExists
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("identity: create user failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var u adminUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return "", err
	}
	if u.ID == "" {
		return "", errors.New("identity: create user response missing id")
	}
	return u.ID, nil
}

// GetUserByEmail looks up an existing provider account and returns its UID.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (string, error) {
	endpoint := s.baseURL + "/admin/users?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("identity: user lookup failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var out struct {
		Users []adminUser `json:"users"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	for _, u := range out.Users {
		if strings.EqualFold(u.Email, email) {
			return u.ID, nil
		}
	}
	return "", fmt.Errorf("identity: no account for %s", email)
}
