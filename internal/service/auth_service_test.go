package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/pennywise/pkg/api"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	_, err := env.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email: "ALICE@example.com", DisplayName: "Alice 2", Password: "password123",
	}))
	expectError(t, err, connect.CodeAlreadyExists, "")

	_, err = env.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email: "bob@example.com", DisplayName: "Bob", Password: "short",
	}))
	expectError(t, err, connect.CodeInvalidArgument, "")

	_, err = env.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email: "bob@example.com", Password: "password123",
	}))
	expectError(t, err, connect.CodeInvalidArgument, "")

	login, err := env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email: "alice@example.com", Password: "password123",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.User.ID != alice.ID || login.Msg.Token == "" {
		t.Errorf("login: unexpected %+v", login.Msg)
	}

	_, err = env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email: "alice@example.com", Password: "wrong-password",
	}))
	expectError(t, err, connect.CodeUnauthenticated, "")

	_, err = env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "alice@example.com"}))
	expectError(t, err, connect.CodeInvalidArgument, "")
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	resp, err := env.auth.GetCurrentUser(ctx, as(alice, &api.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Msg.User.ID != alice.ID || resp.Msg.User.Email != "alice@example.com" {
		t.Errorf("user: unexpected %+v", resp.Msg.User)
	}

	_, err = env.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	expectError(t, err, connect.CodeUnauthenticated, "")

	_, err = env.auth.GetCurrentUser(ctx, as(user{Token: "garbage"}, &api.GetCurrentUserRequest{}))
	expectError(t, err, connect.CodeUnauthenticated, "")
}
