package cliente

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PadronClient talks to an apis.net.pe-compatible registry gateway.
type PadronClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewPadronClient(baseURL, token string) *PadronClient {
	return &PadronClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *PadronClient) ConsultarRUC(ctx context.Context, ruc string) (*PadronRUC, error) {
	var out PadronRUC
	if err := c.get(ctx, "/v2/sunat/ruc?numero="+url.QueryEscape(ruc), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PadronClient) ConsultarDNI(ctx context.Context, dni string) (*PadronDNI, error) {
	var out PadronDNI
	if err := c.get(ctx, "/v2/reniec/dni?numero="+url.QueryEscape(dni), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PadronClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrPadronNoDisponible
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrPadronNoEncontrado
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("padron: estado inesperado %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
