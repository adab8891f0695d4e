package bootstrap

import (
	"GophSession/internal/cli/actions"
	"GophSession/internal/cli/api"
	"GophSession/internal/cli/state"
	"GophSession/internal/config"

	"go.uber.org/zap"
)

// Session bundles the store and the actions bound to it.
type Session struct {
	Store   *state.Store
	Actions *actions.Actions
	Client  *api.Client
}

// OpenSession wires storage, store and actions for one CLI run and
// reconciles the in-memory token with local storage.
func OpenSession(cfg *config.Config, logger *zap.SugaredLogger) (*Session, func() error, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	storage, cleanup, err := OpenStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	store := state.NewStore(state.Reduce, state.InitialStore(), state.Persistence(storage, logger))
	client := api.NewClient(nil)
	acts := actions.New(store.Dispatch, store.GetState, client, cfg, logger)
	acts.SyncSessionStorage()
	return &Session{Store: store, Actions: acts, Client: client}, cleanup, nil
}
