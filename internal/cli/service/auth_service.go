package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"GophSession/internal/cli/actions"
	"GophSession/internal/cli/api"
	"GophSession/internal/cli/state"
	"GophSession/internal/config"
)

// ErrInvalidCredentials is returned by Login on 401.
var ErrInvalidCredentials = errors.New("invalid login or password")

// ErrLoginTaken is returned by Register on 409.
var ErrLoginTaken = errors.New("login already taken")

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register создаёт пользователя и сохраняет выданный токен.
	Register(ctx context.Context, login, password string) error

	// Login логирует пользователя и сохраняет выданный токен.
	Login(ctx context.Context, login, password string) error

	// Logout очищает локальный контекст аутентификации.
	Logout()

	// Authorized сообщает, есть ли в сессии токен.
	Authorized() bool
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Msg   string `json:"msg"`
}

type authService struct {
	cfg      *config.Config
	client   *api.Client
	actions  *actions.Actions
	getState func() state.State
}

// NewAuthService builds an AuthService that stores tokens through acts.
func NewAuthService(cfg *config.Config, client *api.Client, acts *actions.Actions, getState func() state.State) AuthService {
	if client == nil {
		client = api.NewClient(nil)
	}
	return &authService{cfg: cfg, client: client, actions: acts, getState: getState}
}

func (s *authService) Register(ctx context.Context, login, password string) error {
	return s.authenticate(ctx, "/api/user/register", login, password)
}

func (s *authService) Login(ctx context.Context, login, password string) error {
	return s.authenticate(ctx, "/api/user/login", login, password)
}

func (s *authService) authenticate(ctx context.Context, path, login, password string) error {
	if login == "" || password == "" {
		return errors.New("login and password are required")
	}
	endpoint := strings.TrimRight(s.cfg.ServerURL, "/") + path
	resp, body, err := s.client.PostJSON(ctx, endpoint, Credentials{Login: login, Password: password}, "")
	if err != nil {
		return err
	}

	var tr tokenResponse
	_ = json.Unmarshal(body, &tr)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if tr.Token == "" {
			return errors.New("server returned no token")
		}
		s.actions.SetToken(tr.Token)
		return nil
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	case http.StatusConflict:
		return ErrLoginTaken
	}
	if tr.Msg != "" {
		return fmt.Errorf("server error: %s", tr.Msg)
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func (s *authService) Logout() {
	s.actions.RemoveToken()
}

func (s *authService) Authorized() bool {
	return s.getState().HasToken()
}
