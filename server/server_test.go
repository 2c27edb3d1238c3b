package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mailforge-ai/mailforge"
	"github.com/mailforge-ai/mailforge/emailparse"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	result *mailforge.Result
	err    error
	got    mailforge.Request
}

func (s *stubGenerator) Generate(ctx context.Context, req mailforge.Request) (*mailforge.Result, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestServer(gen Generator) *httptest.Server {
	return httptest.NewServer(New(":0", gen).Handler())
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&stubGenerator{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGenerateSuccess(t *testing.T) {
	gen := &stubGenerator{result: &mailforge.Result{
		BatchID: "batch-1",
		Emails: []emailparse.Document{
			{SequenceIndex: 1, StyleLabel: "EDITORIAL", HTML: "<!DOCTYPE html><html></html>"},
		},
		Product: mailforge.ProductSummary{Name: "Linen Shirt", Price: "$88.00"},
	}}
	ts := newTestServer(gen)
	defer ts.Close()

	body := `{"productUrl": "https://shop.example.com/p", "emailCount": 2, "promotion": "25% off"}`
	resp, err := http.Post(ts.URL+"/api/generate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	require.Equal(t, "https://shop.example.com/p", gen.got.ProductURL)
	require.Equal(t, 2, gen.got.EmailCount)
	require.Equal(t, "25% off", gen.got.Promotion)

	var result mailforge.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Equal(t, "batch-1", result.BatchID)
	require.Len(t, result.Emails, 1)
	require.Equal(t, "Linen Shirt", result.Product.Name)
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("%w: product URL is required", mailforge.ErrInvalidInput), http.StatusBadRequest},
		{"fetch failed", fmt.Errorf("%w: status 404", mailforge.ErrFetchFailed), http.StatusUnprocessableEntity},
		{"extraction failed", fmt.Errorf("%w: malformed", mailforge.ErrExtractionFailed), http.StatusBadGateway},
		{"generation failed", fmt.Errorf("%w: timeout", mailforge.ErrGenerationFailed), http.StatusBadGateway},
		{"no emails", mailforge.ErrNoEmails, http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(&stubGenerator{err: tt.err})
			defer ts.Close()

			body := `{"productUrl": "https://shop.example.com/p"}`
			resp, err := http.Post(ts.URL+"/api/generate", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			require.NotEmpty(t, payload["error"])
		})
	}
}

func TestGenerateRejectsMalformedBody(t *testing.T) {
	ts := newTestServer(&stubGenerator{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/generate", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
