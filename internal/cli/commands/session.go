package commands

import (
	"GophSession/internal/cli/bootstrap"
	"GophSession/internal/cli/service"
	"GophSession/internal/config"
	"fmt"
)

// withSession opens the session for one command run and closes it afterwards.
func withSession(cfg *config.Config, fn func(s *bootstrap.Session) error) error {
	s, cleanup, err := bootstrap.OpenSession(cfg, logger)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			logger.Warnw("close session storage", "error", cerr)
		}
	}()
	return fn(s)
}

func authService(cfg *config.Config, s *bootstrap.Session) service.AuthService {
	return service.NewAuthService(cfg, s.Client, s.Actions, s.Store.GetState)
}
