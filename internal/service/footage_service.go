package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/models"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

const pexelsSearchURL = "https://api.pexels.com/videos/search"

// FootageService searches vertical stock footage for a keyword phrase.
type FootageService interface {
	Search(ctx context.Context, query string) ([]transfer.PexelsVideo, error)
}

type pexelsService struct {
	cfg    config.Config
	client *http.Client
}

func NewFootageService(cfg config.Config) FootageService {
	return &pexelsService{cfg: cfg, client: http.DefaultClient}
}

func (s *pexelsService) Search(ctx context.Context, query string) ([]transfer.PexelsVideo, error) {
	if query == "" {
		return nil, &models.ValidationError{Msg: "Query is required"}
	}
	if s.cfg.PexelsAPIKey == "" {
		return nil, errors.New("Pexels API key is not configured")
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("orientation", "portrait")
	params.Add("per_page", "4")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", pexelsSearchURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", s.cfg.PexelsAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, &models.NetworkError{Msg: "footage search failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.New("invalid Pexels API key")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &models.NetworkError{Msg: fmt.Sprintf("footage search failed: status %d", resp.StatusCode)}
	}

	var sr transfer.PexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode footage response: %w", err)
	}

	return sr.Videos, nil
}
