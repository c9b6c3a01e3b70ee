package telegraph

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestTokenStoreSaveLoadDelete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ph_token.txt")
	store := NewTokenStore(path)

	// Missing file loads as empty, not as an error.
	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error: %v", err)
	}
	if token != "" {
		t.Errorf("Load() on missing file = %q, want empty", token)
	}

	if err := store.Save(context.Background(), "secret-token"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	token, err = store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if token != "secret-token" {
		t.Errorf("Load() = %q, want %q", token, "secret-token")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Delete() should remove the token file")
	}

	// Deleting again is a no-op.
	if err := store.Delete(); err != nil {
		t.Errorf("Delete() on missing file error: %v", err)
	}
}

func TestTokenStoreLoadTrimsWhitespace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ph_token.txt")
	if err := os.WriteFile(path, []byte("  tok-123\n"), 0600); err != nil {
		t.Fatal(err)
	}

	token, err := NewTokenStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("Load() = %q, want %q", token, "tok-123")
	}
}

func TestDefaultTokenPathEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom-token")
	t.Setenv(EnvTokenPath, custom)

	if got := DefaultTokenPath(); got != custom {
		t.Errorf("DefaultTokenPath() = %q, want %q", got, custom)
	}
}

func TestDefaultTokenPathPrefersExistingWorkingDirFile(t *testing.T) {
	t.Setenv(EnvTokenPath, "")

	dir := t.TempDir()
	t.Chdir(dir)

	// No local file: the home location wins.
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in this environment")
	}
	if got := DefaultTokenPath(); got != filepath.Join(home, homeTokenFileName) {
		t.Errorf("DefaultTokenPath() = %q, want home location", got)
	}

	// An existing local file takes precedence over home.
	local := filepath.Join(dir, tokenFileName)
	if err := os.WriteFile(local, []byte("tok"), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := filepath.EvalSymlinks(DefaultTokenPath())
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(local)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("DefaultTokenPath() = %q, want %q", got, want)
	}
}

func TestNewTokenStoreExplicitPath(t *testing.T) {
	t.Parallel()

	store := NewTokenStore("/some/explicit/path")
	if store.Path() != "/some/explicit/path" {
		t.Errorf("Path() = %q, want explicit path", store.Path())
	}
}
