package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/config"
	"context"
	"errors"
	"fmt"
)

type messageCmd struct{}

func (messageCmd) Name() string        { return "message" }
func (messageCmd) Description() string { return "Fetch the private message from the server" }
func (messageCmd) Usage() string       { return "message" }

func (messageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		ok, err := s.Actions.GetMessage(ctx)
		if err != nil {
			return err
		}
		msg := s.Store.GetState().Message
		if !ok {
			return errors.New(msg)
		}
		fmt.Fprintln(Out, msg)
		return nil
	})
}

func init() { RegisterCmd(messageCmd{}) }
