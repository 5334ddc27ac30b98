package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"ferro/internal/adapters/sound"
	"ferro/internal/adapters/storage"
	"ferro/internal/config"
	"ferro/internal/logging"
	"ferro/internal/session"
	"ferro/internal/timer"
	"ferro/internal/ui"
)

// sessionModel wraps ui.Model to close the per-connection repository
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
	repo      *storage.SQLiteRepository
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.repo.Close(); err != nil {
			logging.Logger.Error("Failed to close repository for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates the workout session screen for each SSH connection.
// The workout day can be passed as the SSH command, e.g.
// `ssh -p 23234 host push`; otherwise the block's first day is used.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	plan, err := config.LoadPlan(s.planPath)
	if err != nil {
		logging.Logger.Error("Failed to load plan for SSH session",
			"error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	block, err := plan.Block(s.settings.DefaultBlock)
	if err != nil {
		return errorModel{err}, nil
	}

	dayName := ""
	if cmd := sess.Command(); len(cmd) > 0 {
		dayName = cmd[0]
	} else if len(block.Days) > 0 {
		dayName = block.Days[0].Name
	}

	day, err := block.Day(dayName)
	if err != nil {
		return errorModel{err}, nil
	}

	week := 1
	if s.settings.DefaultWeek != nil {
		week = *s.settings.DefaultWeek
	}

	// Shared database, one connection per SSH session
	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	specs := day.Specs()
	store := session.NewStore(specs, week)
	bridge := session.NewBridge(repo, specs, day.Name, block.Name, week)

	ctx := context.Background()
	bridge.Restore(ctx, store)
	session.SeedPreviousWeights(ctx, store, repo)

	engine := timer.NewEngine(sound.NewPlayer(), config.LoadTimerSettings())

	errorClearDelay := 10 * time.Second
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	model := ui.NewModel(store, bridge, engine, day.Name, block.Name, errorClearDelay)

	wrappedModel := &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
		repo:      repo,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
