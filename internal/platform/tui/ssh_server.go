package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/level"
	"github.com/vovakirdan/balloon-math/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.balloons/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the base configuration every session starts from.
	Game config.BalloonsConfig

	// Preset is the initial difficulty preset of every session.
	Preset config.DifficultyPreset

	// TickRate is the simulation rate of every session.
	TickRate int

	// Levels are imported into every session's library.
	Levels []level.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.balloons/scores.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultBalloonsConfig(),
		Preset:      config.DifficultyNormal,
		TickRate:    60,
	}
}

// SSHServer serves the game over SSH, one shell per connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64 // Connected players
}

// NewSSHServer prepares the server. A missing scores database only disables
// score keeping.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "balloons-ssh",
	})

	hostKey, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	srv.store, err = storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if srv.store != nil {
			srv.store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves where the host key lives and makes sure its
// directory exists. wish generates the key on first start.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".balloons", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the per-connection session: its own library and
// options, sharing only the store.
func (s *SSHServer) newSession(w, h int) *Session {
	session := NewSession(s.store, s.config.Game, s.config.Preset, core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	})
	if _, err := session.ImportLevels(s.config.Levels); err != nil {
		s.logger.Warn("skipped imported levels", "error", err)
	}
	return session
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "Balloon Math needs a terminal: connect with ssh -t")
		return nil, nil
	}
	return NewShellModel(s.newSession(pty.Window.Width, pty.Window.Height)), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("player joined",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		next(sess)
		s.logger.Info("player left",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
			"active", s.active.Add(-1),
		)
	}
}

// Active returns the number of connected players.
func (s *SSHServer) Active() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is cancelled or the listener fails, then
// shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if s.store != nil {
			s.store.Close()
		}
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.Active())
	return s.Shutdown()
}

// Shutdown waits up to ten seconds for sessions to end, then closes the
// store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
