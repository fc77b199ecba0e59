package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	config "github.com/maheshrc27/viralshorts/configs"
	"github.com/maheshrc27/viralshorts/internal/models"
	"github.com/maheshrc27/viralshorts/internal/transfer"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

const generatorPrompt = `You are an AI content engine inside a fully automated YouTube Shorts posting system.
Generate ONE viral YouTube Short including Idea, Script, Voiceover, Keywords, Subtitles, Title, Description, Hashtags, and Metadata.

Constraints: 9:16 vertical, 30-45 seconds, simple conversational English, no emojis, output JSON ONLY with keys:
idea, script, voiceover, stock_video_keywords (array), subtitles (array of short lines), title, description, hashtags (array),
metadata {estimated_duration_seconds, category, posting_time_suggestion}.

Niche: %s
Tone: %s
Theme examples: %s`

// PackageGenerator produces one complete content package from a topic
// configuration. Any concrete provider can sit behind this.
type PackageGenerator interface {
	Generate(ctx context.Context, gc *transfer.GeneratorConfig) (*models.ContentPackage, error)
}

type geminiGenerator struct {
	cfg    config.Config
	client *http.Client
}

func NewPackageGenerator(cfg config.Config) PackageGenerator {
	return &geminiGenerator{cfg: cfg, client: http.DefaultClient}
}

func (g *geminiGenerator) Generate(ctx context.Context, gc *transfer.GeneratorConfig) (*models.ContentPackage, error) {
	if gc.Niche == "" {
		return nil, &models.ValidationError{Msg: "Niche is required"}
	}
	if g.cfg.GeminiAPIKey == "" {
		return nil, errors.New("generator API key is not configured")
	}

	reqBody := transfer.GeminiRequest{
		SystemInstruction: &transfer.GeminiContent{
			Parts: []transfer.GeminiPart{{Text: fmt.Sprintf(generatorPrompt, gc.Niche, gc.Tone, gc.Theme)}},
		},
		Contents: []transfer.GeminiContent{{
			Role:  "user",
			Parts: []transfer.GeminiPart{{Text: "Generate ONE complete YouTube Short package now."}},
		}},
		GenerationConfig: transfer.GeminiGenerationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.8,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?key=%s", geminiEndpoint, g.cfg.GeminiAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, &models.NetworkError{Msg: "generator request failed", Err: err}
	}
	defer resp.Body.Close()

	var gr transfer.GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if gr.Error != nil {
			return nil, fmt.Errorf("generator error: %s", gr.Error.Message)
		}
		return nil, fmt.Errorf("generator error: status %d", resp.StatusCode)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("generator returned no content")
	}

	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)

	// A package is all-or-nothing; a partial decode is rejected wholesale.
	var pkg models.ContentPackage
	if err := json.Unmarshal([]byte(text), &pkg); err != nil {
		return nil, fmt.Errorf("decode content package: %w", err)
	}
	if pkg.Voiceover == "" || pkg.Title == "" {
		return nil, errors.New("generator returned an incomplete package")
	}

	return &pkg, nil
}
