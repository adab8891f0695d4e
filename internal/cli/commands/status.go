package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show whether a token is stored" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		if s.Store.GetState().HasToken() {
			fmt.Fprintln(Out, "Status: authorized")
		} else {
			fmt.Fprintln(Out, "Status: anonymous")
		}
		return nil
	})
}

func init() { RegisterCmd(statusCmd{}) }
