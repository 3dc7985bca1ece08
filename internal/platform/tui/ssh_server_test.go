package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register("stub-ssh", func() registry.Game { return &stubGame{} })
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected %q", cfg.Address, ":23234")
	}
	if cfg.GameID != "tetris" {
		t.Errorf("GameID = %q, expected %q", cfg.GameID, "tetris")
	}
	if cfg.IdleTimeout <= 0 {
		t.Errorf("IdleTimeout = %v, expected positive", cfg.IdleTimeout)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("NewSSHServer() expected error for unknown game")
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.GameID = "stub-ssh"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
}
