package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/h2non/filetype"
	"github.com/maheshrc27/viralshorts/internal/models"
)

type FetchService interface {
	Download(ctx context.Context, rawURL, dest string) error
}

type fetchService struct {
	client *http.Client
}

func NewFetchService() FetchService {
	return &fetchService{client: http.DefaultClient}
}

// Download retrieves the remote video in full and persists it to dest.
// The payload's leading bytes are sniffed; anything that is not a video is
// treated as a failed fetch.
func (s *fetchService) Download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		slog.Info(err.Error())
		return &models.NetworkError{Msg: "invalid video url", Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return &models.NetworkError{Msg: "error downloading video", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &models.NetworkError{Msg: fmt.Sprintf("unexpected response status: %d", resp.StatusCode)}
	}

	head := make([]byte, 262)
	n, err := io.ReadFull(resp.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return &models.NetworkError{Msg: "error reading video", Err: err}
	}
	head = head[:n]

	if !filetype.IsVideo(head) {
		return &models.NetworkError{Msg: "fetched asset is not a video"}
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create video file: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(head); err != nil {
		return fmt.Errorf("write video file: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		return &models.NetworkError{Msg: "error saving video", Err: err}
	}

	return nil
}
