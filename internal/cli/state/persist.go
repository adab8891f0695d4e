package state

import (
	"errors"

	"GophSession/internal/cli/repo"

	"go.uber.org/zap"
)

// Persistence is the only path between the session and local storage.
// It fills SyncSessionStorage with the stored token and, once the state
// has been updated, writes SetToken or deletes on RemoveToken.
// Storage failures are logged and never block the state change.
func Persistence(storage repo.LocalStorage, logger *zap.SugaredLogger) Middleware {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return func(next DispatchFunc) DispatchFunc {
		return func(a Action) {
			switch a.Type {
			case SyncSessionStorage:
				tok, err := storage.GetItem(repo.TokenKey)
				if err != nil {
					if !errors.Is(err, repo.ErrNotFound) {
						logger.Errorw("session: read token", "error", err)
					}
					tok = ""
				}
				a.Payload = tok
				next(a)
			case SetToken:
				next(a)
				if err := storage.SetItem(repo.TokenKey, a.Payload); err != nil {
					logger.Errorw("session: save token", "error", err)
				}
			case RemoveToken:
				next(a)
				if err := storage.RemoveItem(repo.TokenKey); err != nil {
					logger.Errorw("session: remove token", "error", err)
				}
			default:
				next(a)
			}
		}
	}
}
