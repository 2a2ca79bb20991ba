package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
)

// Client fala com o PostgREST do Supabase (tabela "leads").
// Toda chamada leva a apikey; o bearer muda conforme o chamador:
// anon key no create público, token de sessão nas operações do admin.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Create insere o lead com a anon key (política de INSERT público).
// Prefer: return=minimal, não esperamos eco da linha criada.
func (c *Client) Create(ctx context.Context, lead *entity.Lead) error {
	jsonBody, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("erro ao marshal lead: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/leads", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req, c.anonKey)
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req)
}

// List busca todos os leads, mais recente primeiro.
func (c *Client) List(ctx context.Context, token string) ([]entity.Lead, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/leads?select=*&order=created_at.desc", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteError(resp)
	}

	var leads []entity.Lead
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, fmt.Errorf("erro ao decode da lista de leads: %w", err)
	}
	return leads, nil
}

// UpdateStatus faz PATCH parcial escopado por id, só a coluna status.
func (c *Client) UpdateStatus(ctx context.Context, token, id, status string) error {
	jsonBody, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return fmt.Errorf("erro ao marshal status: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/leads?id=eq.%s", c.baseURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req, token)
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req)
}

// Delete remove o lead pelo id.
func (c *Client) Delete(ctx context.Context, token, id string) error {
	endpoint := fmt.Sprintf("%s/rest/v1/leads?id=eq.%s", c.baseURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req, token)
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}

// setHeaders centraliza os headers obrigatórios do PostgREST.
func (c *Client) setHeaders(req *http.Request, bearer string) {
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")
}

// remoteError repassa o corpo da resposta não-2xx como detalhe do erro,
// do jeito que o painel mostra pro admin.
func remoteError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 {
		return fmt.Errorf("supabase retornou status %d", resp.StatusCode)
	}
	return fmt.Errorf("supabase retornou status %d: %s", resp.StatusCode, string(body))
}
