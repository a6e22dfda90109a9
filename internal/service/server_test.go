package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/pennywise/internal/access"
	"github.com/mmynk/pennywise/internal/auth"
	"github.com/mmynk/pennywise/internal/middleware"
	"github.com/mmynk/pennywise/internal/notify"
	"github.com/mmynk/pennywise/internal/splits"
	"github.com/mmynk/pennywise/internal/storage/sqlite"
	"github.com/mmynk/pennywise/pkg/api"
	"github.com/mmynk/pennywise/pkg/api/apiconnect"
)

// sink records dispatched notifications and can be told to fail.
type sink struct {
	mu   sync.Mutex
	msgs []notify.Message
	fail bool
}

func (s *sink) Dispatch(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	if s.fail {
		return errors.New("delivery refused")
	}
	return nil
}

func (s *sink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

// testEnv is a full server over a temp database with clients for every
// service.
type testEnv struct {
	store  *sqlite.SQLiteStore
	fanOut *notify.FanOut
	sink   *sink

	auth          apiconnect.AuthServiceClient
	groups        apiconnect.GroupServiceClient
	splits        apiconnect.SplitServiceClient
	notifications apiconnect.NotificationServiceClient
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	rec := &sink{}
	fanOut := notify.NewFanOut(rec, notify.WithLogger(logger))
	resolver := access.NewResolver(store)
	splitSvc := splits.New(store, fanOut, splits.WithLogger(logger))

	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, apiconnect.AuthServiceRegisterProcedure, apiconnect.AuthServiceLoginProcedure),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, logger), interceptors))
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(store, resolver, splitSvc), interceptors))
	mux.Handle(apiconnect.NewSplitServiceHandler(NewSplitService(resolver, splitSvc), interceptors))
	mux.Handle(apiconnect.NewNotificationServiceHandler(NewNotificationService(store), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		fanOut.Wait()
		store.Close()
	})

	return &testEnv{
		store:         store,
		fanOut:        fanOut,
		sink:          rec,
		auth:          apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		groups:        apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		splits:        apiconnect.NewSplitServiceClient(http.DefaultClient, server.URL),
		notifications: apiconnect.NewNotificationServiceClient(http.DefaultClient, server.URL),
	}
}

// user is a registered account and its bearer token.
type user struct {
	ID    string
	Token string
}

func (e *testEnv) register(t *testing.T, name string) user {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       fmt.Sprintf("%s@example.com", name),
		DisplayName: name,
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return user{ID: resp.Msg.User.ID, Token: resp.Msg.Token}
}

// as builds a request authenticated as u.
func as[T any](u user, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+u.Token)
	return req
}

// expectError asserts the Connect code and, when domainCode is set, the
// domain code carried in the error detail.
func expectError(t *testing.T, err error, code connect.Code, domainCode string) map[string]any {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("code: expected %s, got %s (%v)", code, got, err)
	}
	if domainCode == "" {
		return nil
	}
	gotDomain, details, ok := api.ErrorInfo(err)
	if !ok {
		t.Fatalf("expected error detail on %v", err)
	}
	if gotDomain != domainCode {
		t.Fatalf("domain code: expected %s, got %s", domainCode, gotDomain)
	}
	return details
}

// groupWith creates a group owned by owner and adds the named members, some
// of them linked to accounts. It returns the group id and member ids with the
// owner's first.
func (e *testEnv) groupWith(t *testing.T, owner user, members ...*api.AddMemberRequest) (string, []string) {
	t.Helper()
	ctx := context.Background()

	created, err := e.groups.CreateGroup(ctx, as(owner, &api.CreateGroupRequest{Name: "Flat 4B"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.ID
	ids := []string{created.Msg.Owner.ID}

	for _, m := range members {
		m.GroupID = groupID
		resp, err := e.groups.AddMember(ctx, as(owner, m))
		if err != nil {
			t.Fatalf("AddMember(%s) failed: %v", m.DisplayName, err)
		}
		ids = append(ids, resp.Msg.Member.ID)
	}
	return groupID, ids
}
