package handlers_test

import (
	"GophSession/internal/config"
	"GophSession/internal/handlers"
	"GophSession/internal/middleware"
	"GophSession/internal/model"
	"GophSession/internal/repo"
	"GophSession/internal/service"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{AuthSecret: testSecret, TokenTTL: time.Hour}
}

func newTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	h := handlers.NewHandler(service.NewUserService(ur), zap.NewNop().Sugar(), testConfig())
	return h.Router
}

func bearer(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	tok, err := middleware.IssueToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}
