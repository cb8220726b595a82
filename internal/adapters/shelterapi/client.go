// Package shelterapi es el cliente HTTP de la API de abrigos que usa la página de cadastro.
package shelterapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shelter-registry/internal/middleware"
	"shelter-registry/internal/platform/httpclient"
	"shelter-registry/internal/shelterform"
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Token va como Bearer. Sin token y con DebugUserID se usa el header de modo dev.
	Token       string
	DebugUserID string
}

type Client struct {
	http        *httpclient.Client
	token       string
	debugUserID string
}

// Shelter es la vista de un abrigo que devuelve la API.
type Shelter struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	ShelteredPeople *int      `json:"shelteredPeople"`
	Capacity        *int      `json:"capacity"`
	Verified        bool      `json:"verified"`
	PetFriendly     *bool     `json:"petFriendly"`
	Contact         *string   `json:"contact"`
	Pix             *string   `json:"pix"`
	CreatedAt       time.Time `json:"createdAt"`
}

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("shelterapi: base url required")
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("shelterapi: %w", err)
	}
	return &Client{
		http:        hc,
		token:       strings.TrimSpace(cfg.Token),
		debugUserID: strings.TrimSpace(cfg.DebugUserID),
	}, nil
}

// Create implementa shelterform.ShelterService.
// Un status no-2xx vuelve como *httpclient.HTTPError con el "message" del body.
func (c *Client) Create(ctx context.Context, d shelterform.Draft) error {
	return c.http.DoJSON(ctx, http.MethodPost, "/shelters", c.headers(), d, nil)
}

func (c *Client) List(ctx context.Context) ([]Shelter, error) {
	var out []Shelter
	if err := c.http.DoJSON(ctx, http.MethodGet, "/shelters", c.headers(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{}
	switch {
	case c.token != "":
		h["Authorization"] = "Bearer " + c.token
	case c.debugUserID != "":
		h[middleware.DebugUserHeader] = c.debugUserID
	}
	return h
}
