package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"github.com/maheshrc27/viralshorts/pkg/utils"
	"golang.org/x/oauth2"
)

// TokenRepository persists the platform credential. The token is loaded
// fresh on every upload attempt and overwritten on each renewal.
type TokenRepository interface {
	Get(ctx context.Context) (*oauth2.Token, bool, error)
	Save(ctx context.Context, token *oauth2.Token) error
}

type fileTokenRepository struct {
	path      string
	secretKey string
}

// NewFileTokenRepository stores the token as JSON at path. When secretKey is
// non-empty the payload is encrypted at rest with AES-GCM.
func NewFileTokenRepository(path, secretKey string) TokenRepository {
	return &fileTokenRepository{path: path, secretKey: secretKey}
}

func (r *fileTokenRepository) Get(ctx context.Context) (*oauth2.Token, bool, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		slog.Info(err.Error())
		return nil, false, err
	}

	payload := string(data)
	if r.secretKey != "" {
		payload, err = utils.Decrypt(payload, []byte(r.secretKey))
		if err != nil {
			return nil, false, err
		}
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(payload), &token); err != nil {
		slog.Info(err.Error())
		return nil, false, err
	}

	return &token, true, nil
}

func (r *fileTokenRepository) Save(ctx context.Context, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}

	payload := string(data)
	if r.secretKey != "" {
		payload, err = utils.Encrypt(data, []byte(r.secretKey))
		if err != nil {
			return err
		}
	}

	return os.WriteFile(r.path, []byte(payload), 0600)
}

type memoryTokenRepository struct {
	mu    sync.Mutex
	token *oauth2.Token
}

// NewMemoryTokenRepository is an in-memory store for tests.
func NewMemoryTokenRepository(token *oauth2.Token) TokenRepository {
	return &memoryTokenRepository{token: token}
}

func (r *memoryTokenRepository) Get(ctx context.Context) (*oauth2.Token, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.token == nil {
		return nil, false, nil
	}
	return r.token, true, nil
}

func (r *memoryTokenRepository) Save(ctx context.Context, token *oauth2.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	return nil
}
