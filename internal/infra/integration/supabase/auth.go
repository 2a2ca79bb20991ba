package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andrefarias-dev/briefing-backend/internal/usecase"
)

// AuthClient fala com o GoTrue do Supabase: login por senha,
// checagem de sessão e logout.
type AuthClient struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// authError é o formato de erro do GoTrue. Varia entre
// {error, error_description} e {code, msg} conforme o endpoint.
type authError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

// SignIn troca email/senha por uma sessão. A mensagem de erro do
// provedor é repassada como veio. É o que o login mostra na tela.
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	jsonBody, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/auth/v1/token?grant_type=password", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com o auth: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, authRemoteError(resp)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("erro ao decode da sessão: %w", err)
	}
	return &session, nil
}

// GetUser valida o token de acesso contra o GoTrue. Token revogado ou
// vencido vira ErrSemSessao, que na borda HTTP é redirect pro login.
func (c *AuthClient) GetUser(ctx context.Context, token string) (*User, error) {
	endpoint := fmt.Sprintf("%s/auth/v1/user", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com o auth: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		io.Copy(io.Discard, resp.Body)
		return nil, usecase.ErrSemSessao
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, authRemoteError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("erro ao decode do usuário: %w", err)
	}
	return &user, nil
}

// SignOut invalida a sessão no provedor.
func (c *AuthClient) SignOut(ctx context.Context, token string) error {
	endpoint := fmt.Sprintf("%s/auth/v1/logout", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com o auth: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return authRemoteError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *AuthClient) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")
}

func authRemoteError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var ae authError
	if err := json.Unmarshal(body, &ae); err == nil {
		switch {
		case ae.ErrorDescription != "":
			return fmt.Errorf("%s", ae.ErrorDescription)
		case ae.Msg != "":
			return fmt.Errorf("%s", ae.Msg)
		case ae.Message != "":
			return fmt.Errorf("%s", ae.Message)
		case ae.Error != "":
			return fmt.Errorf("%s", ae.Error)
		}
	}

	if len(body) == 0 {
		return fmt.Errorf("auth retornou status %d", resp.StatusCode)
	}
	return fmt.Errorf("auth retornou status %d: %s", resp.StatusCode, string(body))
}
