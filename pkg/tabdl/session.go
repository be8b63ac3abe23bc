package tabdl

import (
	"context"
	"log/slog"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/tableau"
)

// Service is the remote listing and query API a Session drives.
// *tableau.Client implements it.
type Service interface {
	SignIn(ctx context.Context) error
	ListWorkbooks(ctx context.Context, opts tableau.ListOptions) ([]models.WorkbookRef, models.Pagination, error)
	ListViews(ctx context.Context, wb models.WorkbookRef) ([]models.ViewRef, error)
	ViewData(ctx context.Context, view models.ViewRef, filter *models.ViewFilter) ([]byte, error)
}

var _ Service = (*tableau.Client)(nil)

// Session owns the authenticated connection to one server. It is passed
// explicitly to every lookup and download, and is not safe for concurrent use.
type Session struct {
	svc       Service
	server    string
	logger    *slog.Logger
	connected bool
}

// NewSession wraps svc. server is only used in log and error messages.
// A nil logger discards output.
func NewSession(svc Service, server string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{svc: svc, server: server, logger: logger}
}

// Connect signs in unless the session is already connected.
// Failures are returned as *AuthenticationError and are not retried.
func (s *Session) Connect(ctx context.Context) error {
	if s.connected {
		return nil
	}
	s.logger.Info("connecting to server", "server", s.server)
	if err := s.svc.SignIn(ctx); err != nil {
		return NewAuthenticationError(s.server, err)
	}
	s.connected = true
	s.logger.Info("connected to server", "server", s.server)
	return nil
}

// Connected reports whether Connect has succeeded.
func (s *Session) Connected() bool {
	return s.connected
}

// Logger returns the session's logger.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}
