package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrefarias-dev/briefing-backend/internal/entity"
)

func TestCreateEnviaHeadersEStatusNovo(t *testing.T) {
	var got struct {
		method, path, apikey, auth, prefer string
		body                               map[string]any
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.apikey = r.Header.Get("apikey")
		got.auth = r.Header.Get("Authorization")
		got.prefer = r.Header.Get("Prefer")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &got.body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	lead := &entity.Lead{
		NomeCompleto:      "Ana",
		Email:             "ana@exemplo.com",
		Whatsapp:          "21999990001",
		TipoProjeto:       "landing-page",
		DescricaoCurta:    "página",
		ProblemaResolver:  "sem site",
		Funcionalidades:   []string{"Blog / Notícias"},
		Integracoes:       []string{},
		PrazoDesejado:     "1-mes",
		OrcamentoEstimado: "2k-5k",
		Status:            entity.StatusNovo,
	}

	err := client.Create(context.Background(), lead)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/rest/v1/leads", got.path)
	assert.Equal(t, "anon-key", got.apikey)
	assert.Equal(t, "Bearer anon-key", got.auth, "create público usa a anon key como bearer")
	assert.Equal(t, "return=minimal", got.prefer)
	assert.Equal(t, "novo", got.body["status"])

	// Opcional não preenchido vai como null explícito, não string vazia.
	v, ok := got.body["empresa"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestListUsaTokenDaSessaoEOrdenacao(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "select=*&order=created_at.desc", r.URL.RawQuery)
		assert.Equal(t, "Bearer sessao-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		json.NewEncoder(w).Encode([]entity.Lead{
			{ID: "1", NomeCompleto: "Ana", Status: "novo"},
			{ID: "2", NomeCompleto: "Bia", Status: "fechado"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	leads, err := client.List(context.Background(), "sessao-token")
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Ana", leads[0].NomeCompleto)
}

func TestUpdateStatusEscopadoPorID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "id=eq.42", r.URL.RawQuery)
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, map[string]string{"status": "contato"}, body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	err := client.UpdateStatus(context.Background(), "sessao-token", "42", "contato")
	assert.NoError(t, err)
}

func TestDeleteEscopadoPorID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "id=eq.42", r.URL.RawQuery)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	assert.NoError(t, client.Delete(context.Background(), "sessao-token", "42"))
}

func TestErroRemotoCarregaOCorpoDaResposta(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"new row violates row-level security policy"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "anon-key")
	err := client.Create(context.Background(), &entity.Lead{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row-level security")
	assert.Contains(t, err.Error(), "401")
}
