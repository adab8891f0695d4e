package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/config"
	"context"
	"fmt"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store the auth token" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		if err := authService(cfg, s).Register(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	})
}

func init() { RegisterCmd(registerCmd{}) }
