package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestFileTokenRepository_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	repo := NewFileTokenRepository(path, testSecretKey)

	token := &oauth2.Token{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
	}

	if err := repo.Save(context.Background(), token); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, exists, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !exists {
		t.Fatal("expected token to exist after Save")
	}
	if loaded.AccessToken != token.AccessToken || loaded.RefreshToken != token.RefreshToken {
		t.Errorf("loaded token %+v does not match saved token", loaded)
	}
}

func TestFileTokenRepository_EncryptedAtRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	repo := NewFileTokenRepository(path, testSecretKey)

	token := &oauth2.Token{AccessToken: "very-secret-access-token"}
	if err := repo.Save(context.Background(), token); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read token file: %v", err)
	}
	if strings.Contains(string(raw), "very-secret-access-token") {
		t.Error("token is stored in plaintext despite a configured secret key")
	}
}

func TestFileTokenRepository_PlaintextWithoutKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	repo := NewFileTokenRepository(path, "")

	token := &oauth2.Token{AccessToken: "access-token"}
	if err := repo.Save(context.Background(), token); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, exists, err := repo.Get(context.Background())
	if err != nil || !exists {
		t.Fatalf("Get failed: exists=%v err=%v", exists, err)
	}
	if loaded.AccessToken != "access-token" {
		t.Errorf("loaded access token = %q", loaded.AccessToken)
	}
}

func TestFileTokenRepository_Absent(t *testing.T) {
	repo := NewFileTokenRepository(filepath.Join(t.TempDir(), "tokens.json"), testSecretKey)

	token, exists, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get on absent file must not error, got %v", err)
	}
	if exists || token != nil {
		t.Error("expected no token before first auth exchange")
	}
}

func TestFileTokenRepository_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	repo := NewFileTokenRepository(path, testSecretKey)

	if err := repo.Save(context.Background(), &oauth2.Token{AccessToken: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(context.Background(), &oauth2.Token{AccessToken: "new"}); err != nil {
		t.Fatal(err)
	}

	loaded, _, err := repo.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if loaded.AccessToken != "new" {
		t.Errorf("expected renewal to overwrite, got %q", loaded.AccessToken)
	}
}
