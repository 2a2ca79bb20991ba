package n8n

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

// Client dispara o webhook de automação quando um briefing entra.
// É fire-and-forget: quem chama só loga a falha, nunca mostra pro
// usuário nem segura o envio principal.
type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) NotifyLeadCreated(ctx context.Context, n usecase.Notification) error {
	jsonBody, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("erro ao marshal notificação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro na conexão com o webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook retornou status %d: %s", resp.StatusCode, string(body))
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}
