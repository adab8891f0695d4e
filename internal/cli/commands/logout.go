package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		authService(cfg, s).Logout()
		fmt.Fprintln(Out, "Logged out")
		return nil
	})
}

func init() { RegisterCmd(logoutCmd{}) }
