package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/config"
	"context"
	"fmt"
	"strings"
)

type setTokenCmd struct{}

func (setTokenCmd) Name() string        { return "set-token" }
func (setTokenCmd) Description() string { return "Store an auth token obtained elsewhere" }
func (setTokenCmd) Usage() string       { return "set-token <token>" }

func (setTokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		s.Actions.SetToken(strings.TrimSpace(args[0]))
		fmt.Fprintln(Out, "Token stored")
		return nil
	})
}

func init() { RegisterCmd(setTokenCmd{}) }
