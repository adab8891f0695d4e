package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the auth token" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		if err := authService(cfg, s).Login(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	})
}

func init() { RegisterCmd(loginCmd{}) }
