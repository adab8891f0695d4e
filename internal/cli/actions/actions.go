// Package actions turns user intents into session actions. GetMessage is
// the only one doing I/O: an authenticated call to the private endpoint.
package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"GophSession/internal/cli/api"
	"GophSession/internal/cli/state"
	"GophSession/internal/config"

	"go.uber.org/zap"
)

// ErrNoToken is returned by GetMessage when the session has no token.
var ErrNoToken = errors.New("No autorizado: No hay token")

// ConnectionErrorMessage is shown when the backend could not be reached or
// answered with something that is not JSON.
const ConnectionErrorMessage = "Error de conexión con el servidor."

// PrivatePath is the endpoint queried by GetMessage.
const PrivatePath = "/api/private"

// Actions dispatches session actions.
type Actions struct {
	dispatch func(state.Action)
	getState func() state.State
	client   *api.Client
	cfg      *config.Config
	logger   *zap.SugaredLogger
}

// New builds Actions on top of a dispatch function and a state accessor,
// usually Store.Dispatch and Store.GetState.
func New(dispatch func(state.Action), getState func() state.State, client *api.Client, cfg *config.Config, logger *zap.SugaredLogger) *Actions {
	if client == nil {
		client = api.NewClient(nil)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Actions{dispatch: dispatch, getState: getState, client: client, cfg: cfg, logger: logger}
}

// SyncSessionStorage reloads the token from local storage.
func (a *Actions) SyncSessionStorage() {
	a.dispatch(state.Action{Type: state.SyncSessionStorage})
}

// SetToken stores token in the session.
func (a *Actions) SetToken(token string) {
	a.logger.Debugw("dispatching SET_TOKEN", "token_len", len(token))
	a.dispatch(state.Action{Type: state.SetToken, Payload: token})
}

// RemoveToken clears the session token (logout).
func (a *Actions) RemoveToken() {
	a.dispatch(state.Action{Type: state.RemoveToken})
}

type privateResponse struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

// GetMessage fetches the private message and puts it into the session.
// It returns ErrNoToken without any request when there is no token.
// Every other outcome is reported through the message state: the result
// is true only for a 2xx answer. 401 and 403 also clear the token.
func (a *Actions) GetMessage(ctx context.Context) (bool, error) {
	token := a.getState().Token
	if token == "" {
		a.logger.Warnw("no token available for the private request")
		return false, ErrNoToken
	}

	url := strings.TrimRight(a.cfg.ServerURL, "/") + PrivatePath
	a.logger.Debugw("requesting private message", "url", url)

	resp, body, err := a.client.GetJSON(ctx, url, token)
	if err != nil {
		a.logger.Errorw("private message: request failed", "url", url, "error", err)
		a.setMessage(ConnectionErrorMessage)
		return false, nil
	}

	var data privateResponse
	if err := json.Unmarshal(body, &data); err != nil {
		a.logger.Errorw("private message: decode failed", "status", resp.StatusCode, "error", err)
		a.setMessage(ConnectionErrorMessage)
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := data.Msg
		if text == "" {
			text = http.StatusText(resp.StatusCode)
		}
		a.logger.Warnw("private message: server error", "status", resp.StatusCode, "msg", text)
		a.setMessage(text)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			a.RemoveToken()
		}
		return false, nil
	}

	a.setMessage(data.Message)
	a.logger.Debugw("private message loaded", "message", data.Message)
	return true, nil
}

func (a *Actions) setMessage(msg string) {
	a.dispatch(state.Action{Type: state.SetMessage, Payload: msg})
}
