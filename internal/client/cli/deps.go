// Package cli is the terminal front-end of the catalog client: a small
// path router over interactive screens.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"catalog/internal/client/api"

	"github.com/google/uuid"
)

// Actions is the part of api.Client the screens use.
type Actions interface {
	Courses(ctx context.Context) ([]api.Course, error)
	Course(ctx context.Context, id uuid.UUID) (*api.Course, error)
	CreateCourse(ctx context.Context, input api.CourseInput, creds api.Credentials) (uuid.UUID, []string, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, input api.CourseInput, creds api.Credentials) ([]string, error)
	DeleteCourse(ctx context.Context, id uuid.UUID, creds api.Credentials) error
	Register(ctx context.Context, user api.NewUser) ([]string, error)
}

// Session is the signed-in state the screens read and change.
// *session.Manager implements it.
type Session interface {
	SignIn(ctx context.Context, emailAddress, password string) (*api.User, error)
	SignOut(ctx context.Context) error
	Current() *api.User
	Credentials() (api.Credentials, bool)
}

// Deps is handed to every screen.
type Deps struct {
	Actions Actions
	Session Session
	In      *bufio.Reader
	Out     io.Writer
	Logger  *slog.Logger

	// ReadPassword reads a secret without echo. Defaults to the terminal.
	ReadPassword func() (string, error)
}

func (d *Deps) withDefaults() *Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.ReadPassword == nil {
		d.ReadPassword = terminalPassword(d.In, d.Out)
	}

	return d
}
