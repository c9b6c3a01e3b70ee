package telegraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alterxyz/gotelegraph/pkg/fsutil"
)

// Token file locations, checked in order by DefaultTokenPath.
const (
	// EnvTokenPath overrides the token file location entirely.
	EnvTokenPath = "PH_TOKEN_PATH"

	// tokenFileName is the token file looked up in the working directory.
	tokenFileName = "ph_token.txt"

	// homeTokenFileName is the token file looked up in the home directory.
	homeTokenFileName = ".ph_token"

	// tokenFileMode keeps the stored credential private to the user.
	tokenFileMode os.FileMode = 0600
)

// TokenStore persists a Telegraph access token in a plain text file.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store at an explicit path, or at the default
// location when path is empty.
func NewTokenStore(path string) *TokenStore {
	if path == "" {
		path = DefaultTokenPath()
	}
	return &TokenStore{path: path}
}

// DefaultTokenPath resolves the token file location:
//  1. $PH_TOKEN_PATH, when set.
//  2. ./ph_token.txt, when it already exists.
//  3. ~/.ph_token, when a home directory exists.
//  4. ./ph_token.txt as the fallback for new tokens.
func DefaultTokenPath() string {
	if p := os.Getenv(EnvTokenPath); p != "" {
		return p
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cwdToken := filepath.Join(cwd, tokenFileName)
	if fsutil.Exists(cwdToken) {
		return cwdToken
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, homeTokenFileName)
	}

	return cwdToken
}

// Path returns the file the store reads and writes.
func (s *TokenStore) Path() string {
	return s.path
}

// Load returns the stored token, or "" when no token file exists.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token atomically so a crash never leaves a truncated
// credential behind.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := fsutil.WriteAtomic(ctx, s.path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Delete removes the token file. Deleting a missing file is not an error.
func (s *TokenStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete token file: %w", err)
	}
	return nil
}
