// Package apiconnect binds the Pennywise services to Connect handlers and
// clients. Messages are the plain structs of package api, encoded with its
// JSON codec.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pennywise/pkg/api"
)

// This is a compile-time assertion to ensure that this file and the connect
// package are compatible.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "pennywise.v1.AuthService"
	// GroupServiceName is the fully-qualified name of the GroupService service.
	GroupServiceName = "pennywise.v1.GroupService"
	// SplitServiceName is the fully-qualified name of the SplitService service.
	SplitServiceName = "pennywise.v1.SplitService"
	// NotificationServiceName is the fully-qualified name of the NotificationService service.
	NotificationServiceName = "pennywise.v1.NotificationService"
)

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// AuthServiceRegisterProcedure is the fully-qualified name of the AuthService's Register RPC.
	AuthServiceRegisterProcedure = "/pennywise.v1.AuthService/Register"
	// AuthServiceLoginProcedure is the fully-qualified name of the AuthService's Login RPC.
	AuthServiceLoginProcedure = "/pennywise.v1.AuthService/Login"
	// AuthServiceGetCurrentUserProcedure is the fully-qualified name of the AuthService's GetCurrentUser RPC.
	AuthServiceGetCurrentUserProcedure = "/pennywise.v1.AuthService/GetCurrentUser"
	// GroupServiceCreateGroupProcedure is the fully-qualified name of the GroupService's CreateGroup RPC.
	GroupServiceCreateGroupProcedure = "/pennywise.v1.GroupService/CreateGroup"
	// GroupServiceListGroupsProcedure is the fully-qualified name of the GroupService's ListGroups RPC.
	GroupServiceListGroupsProcedure = "/pennywise.v1.GroupService/ListGroups"
	// GroupServiceGetGroupProcedure is the fully-qualified name of the GroupService's GetGroup RPC.
	GroupServiceGetGroupProcedure = "/pennywise.v1.GroupService/GetGroup"
	// GroupServiceUpdateGroupProcedure is the fully-qualified name of the GroupService's UpdateGroup RPC.
	GroupServiceUpdateGroupProcedure = "/pennywise.v1.GroupService/UpdateGroup"
	// GroupServiceDeleteGroupProcedure is the fully-qualified name of the GroupService's DeleteGroup RPC.
	GroupServiceDeleteGroupProcedure = "/pennywise.v1.GroupService/DeleteGroup"
	// GroupServiceListMembersProcedure is the fully-qualified name of the GroupService's ListMembers RPC.
	GroupServiceListMembersProcedure = "/pennywise.v1.GroupService/ListMembers"
	// GroupServiceAddMemberProcedure is the fully-qualified name of the GroupService's AddMember RPC.
	GroupServiceAddMemberProcedure = "/pennywise.v1.GroupService/AddMember"
	// GroupServiceUpdateMemberProcedure is the fully-qualified name of the GroupService's UpdateMember RPC.
	GroupServiceUpdateMemberProcedure = "/pennywise.v1.GroupService/UpdateMember"
	// GroupServiceDeleteMemberProcedure is the fully-qualified name of the GroupService's DeleteMember RPC.
	GroupServiceDeleteMemberProcedure = "/pennywise.v1.GroupService/DeleteMember"
	// GroupServiceGetGroupBalancesProcedure is the fully-qualified name of the GroupService's GetGroupBalances RPC.
	GroupServiceGetGroupBalancesProcedure = "/pennywise.v1.GroupService/GetGroupBalances"
	// SplitServiceCreateSplitProcedure is the fully-qualified name of the SplitService's CreateSplit RPC.
	SplitServiceCreateSplitProcedure = "/pennywise.v1.SplitService/CreateSplit"
	// SplitServiceListSplitsProcedure is the fully-qualified name of the SplitService's ListSplits RPC.
	SplitServiceListSplitsProcedure = "/pennywise.v1.SplitService/ListSplits"
	// SplitServiceGetSplitProcedure is the fully-qualified name of the SplitService's GetSplit RPC.
	SplitServiceGetSplitProcedure = "/pennywise.v1.SplitService/GetSplit"
	// SplitServiceListMemberSplitsProcedure is the fully-qualified name of the SplitService's ListMemberSplits RPC.
	SplitServiceListMemberSplitsProcedure = "/pennywise.v1.SplitService/ListMemberSplits"
	// NotificationServiceListNotificationsProcedure is the fully-qualified name of the NotificationService's ListNotifications RPC.
	NotificationServiceListNotificationsProcedure = "/pennywise.v1.NotificationService/ListNotifications"
	// NotificationServiceMarkNotificationReadProcedure is the fully-qualified name of the NotificationService's MarkNotificationRead RPC.
	NotificationServiceMarkNotificationReadProcedure = "/pennywise.v1.NotificationService/MarkNotificationRead"
)

// AuthServiceClient is a client for the pennywise.v1.AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the pennywise.v1.AuthService service. It
// uses the JSON codec; options may add interceptors or other settings.
//
// The URL supplied here should be the base URL for the Connect server (for
// example, http://api.acme.com or https://acme.com/grpc).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.ClientCodec()}, opts...)
	return &authServiceClient{
		register: connect.NewClient[api.RegisterRequest, api.RegisterResponse](
			httpClient,
			baseURL+AuthServiceRegisterProcedure,
			opts...,
		),
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](
			httpClient,
			baseURL+AuthServiceLoginProcedure,
			opts...,
		),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](
			httpClient,
			baseURL+AuthServiceGetCurrentUserProcedure,
			opts...,
		),
	}
}

// authServiceClient implements AuthServiceClient.
type authServiceClient struct {
	register       *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

// Register calls pennywise.v1.AuthService.Register.
func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

// Login calls pennywise.v1.AuthService.Login.
func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// GetCurrentUser calls pennywise.v1.AuthService.GetCurrentUser.
func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the pennywise.v1.AuthService service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with
// the JSON codec.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.HandlerCodecs()}, opts...)
	authServiceRegisterHandler := connect.NewUnaryHandler(
		AuthServiceRegisterProcedure,
		svc.Register,
		connect.WithHandlerOptions(opts...),
	)
	authServiceLoginHandler := connect.NewUnaryHandler(
		AuthServiceLoginProcedure,
		svc.Login,
		connect.WithHandlerOptions(opts...),
	)
	authServiceGetCurrentUserHandler := connect.NewUnaryHandler(
		AuthServiceGetCurrentUserProcedure,
		svc.GetCurrentUser,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	return "/pennywise.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceRegisterProcedure:
			authServiceRegisterHandler.ServeHTTP(w, r)
		case AuthServiceLoginProcedure:
			authServiceLoginHandler.ServeHTTP(w, r)
		case AuthServiceGetCurrentUserProcedure:
			authServiceGetCurrentUserHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.AuthService.GetCurrentUser is not implemented"))
}

// GroupServiceClient is a client for the pennywise.v1.GroupService service.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	GetGroupBalances(context.Context, *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error)
}

// NewGroupServiceClient constructs a client for the pennywise.v1.GroupService service. It
// uses the JSON codec; options may add interceptors or other settings.
//
// The URL supplied here should be the base URL for the Connect server (for
// example, http://api.acme.com or https://acme.com/grpc).
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.ClientCodec()}, opts...)
	return &groupServiceClient{
		createGroup: connect.NewClient[api.CreateGroupRequest, api.CreateGroupResponse](
			httpClient,
			baseURL+GroupServiceCreateGroupProcedure,
			opts...,
		),
		listGroups: connect.NewClient[api.ListGroupsRequest, api.ListGroupsResponse](
			httpClient,
			baseURL+GroupServiceListGroupsProcedure,
			opts...,
		),
		getGroup: connect.NewClient[api.GetGroupRequest, api.GetGroupResponse](
			httpClient,
			baseURL+GroupServiceGetGroupProcedure,
			opts...,
		),
		updateGroup: connect.NewClient[api.UpdateGroupRequest, api.UpdateGroupResponse](
			httpClient,
			baseURL+GroupServiceUpdateGroupProcedure,
			opts...,
		),
		deleteGroup: connect.NewClient[api.DeleteGroupRequest, api.DeleteGroupResponse](
			httpClient,
			baseURL+GroupServiceDeleteGroupProcedure,
			opts...,
		),
		listMembers: connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](
			httpClient,
			baseURL+GroupServiceListMembersProcedure,
			opts...,
		),
		addMember: connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](
			httpClient,
			baseURL+GroupServiceAddMemberProcedure,
			opts...,
		),
		updateMember: connect.NewClient[api.UpdateMemberRequest, api.UpdateMemberResponse](
			httpClient,
			baseURL+GroupServiceUpdateMemberProcedure,
			opts...,
		),
		deleteMember: connect.NewClient[api.DeleteMemberRequest, api.DeleteMemberResponse](
			httpClient,
			baseURL+GroupServiceDeleteMemberProcedure,
			opts...,
		),
		getGroupBalances: connect.NewClient[api.GetGroupBalancesRequest, api.GetGroupBalancesResponse](
			httpClient,
			baseURL+GroupServiceGetGroupBalancesProcedure,
			opts...,
		),
	}
}

// groupServiceClient implements GroupServiceClient.
type groupServiceClient struct {
	createGroup      *connect.Client[api.CreateGroupRequest, api.CreateGroupResponse]
	listGroups       *connect.Client[api.ListGroupsRequest, api.ListGroupsResponse]
	getGroup         *connect.Client[api.GetGroupRequest, api.GetGroupResponse]
	updateGroup      *connect.Client[api.UpdateGroupRequest, api.UpdateGroupResponse]
	deleteGroup      *connect.Client[api.DeleteGroupRequest, api.DeleteGroupResponse]
	listMembers      *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
	addMember        *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	updateMember     *connect.Client[api.UpdateMemberRequest, api.UpdateMemberResponse]
	deleteMember     *connect.Client[api.DeleteMemberRequest, api.DeleteMemberResponse]
	getGroupBalances *connect.Client[api.GetGroupBalancesRequest, api.GetGroupBalancesResponse]
}

// CreateGroup calls pennywise.v1.GroupService.CreateGroup.
func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

// ListGroups calls pennywise.v1.GroupService.ListGroups.
func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

// GetGroup calls pennywise.v1.GroupService.GetGroup.
func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

// UpdateGroup calls pennywise.v1.GroupService.UpdateGroup.
func (c *groupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

// DeleteGroup calls pennywise.v1.GroupService.DeleteGroup.
func (c *groupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

// ListMembers calls pennywise.v1.GroupService.ListMembers.
func (c *groupServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

// AddMember calls pennywise.v1.GroupService.AddMember.
func (c *groupServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

// UpdateMember calls pennywise.v1.GroupService.UpdateMember.
func (c *groupServiceClient) UpdateMember(ctx context.Context, req *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

// DeleteMember calls pennywise.v1.GroupService.DeleteMember.
func (c *groupServiceClient) DeleteMember(ctx context.Context, req *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return c.deleteMember.CallUnary(ctx, req)
}

// GetGroupBalances calls pennywise.v1.GroupService.GetGroupBalances.
func (c *groupServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

// GroupServiceHandler is an implementation of the pennywise.v1.GroupService service.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error)
	DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error)
	GetGroupBalances(context.Context, *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with
// the JSON codec.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.HandlerCodecs()}, opts...)
	groupServiceCreateGroupHandler := connect.NewUnaryHandler(
		GroupServiceCreateGroupProcedure,
		svc.CreateGroup,
		connect.WithHandlerOptions(opts...),
	)
	groupServiceListGroupsHandler := connect.NewUnaryHandler(
		GroupServiceListGroupsProcedure,
		svc.ListGroups,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	groupServiceGetGroupHandler := connect.NewUnaryHandler(
		GroupServiceGetGroupProcedure,
		svc.GetGroup,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	groupServiceUpdateGroupHandler := connect.NewUnaryHandler(
		GroupServiceUpdateGroupProcedure,
		svc.UpdateGroup,
		connect.WithHandlerOptions(opts...),
	)
	groupServiceDeleteGroupHandler := connect.NewUnaryHandler(
		GroupServiceDeleteGroupProcedure,
		svc.DeleteGroup,
		connect.WithHandlerOptions(opts...),
	)
	groupServiceListMembersHandler := connect.NewUnaryHandler(
		GroupServiceListMembersProcedure,
		svc.ListMembers,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	groupServiceAddMemberHandler := connect.NewUnaryHandler(
		GroupServiceAddMemberProcedure,
		svc.AddMember,
		connect.WithHandlerOptions(opts...),
	)
	groupServiceUpdateMemberHandler := connect.NewUnaryHandler(
		GroupServiceUpdateMemberProcedure,
		svc.UpdateMember,
		connect.WithHandlerOptions(opts...),
	)
	groupServiceDeleteMemberHandler := connect.NewUnaryHandler(
		GroupServiceDeleteMemberProcedure,
		svc.DeleteMember,
		connect.WithHandlerOptions(opts...),
	)
	groupServiceGetGroupBalancesHandler := connect.NewUnaryHandler(
		GroupServiceGetGroupBalancesProcedure,
		svc.GetGroupBalances,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	return "/pennywise.v1.GroupService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroupServiceCreateGroupProcedure:
			groupServiceCreateGroupHandler.ServeHTTP(w, r)
		case GroupServiceListGroupsProcedure:
			groupServiceListGroupsHandler.ServeHTTP(w, r)
		case GroupServiceGetGroupProcedure:
			groupServiceGetGroupHandler.ServeHTTP(w, r)
		case GroupServiceUpdateGroupProcedure:
			groupServiceUpdateGroupHandler.ServeHTTP(w, r)
		case GroupServiceDeleteGroupProcedure:
			groupServiceDeleteGroupHandler.ServeHTTP(w, r)
		case GroupServiceListMembersProcedure:
			groupServiceListMembersHandler.ServeHTTP(w, r)
		case GroupServiceAddMemberProcedure:
			groupServiceAddMemberHandler.ServeHTTP(w, r)
		case GroupServiceUpdateMemberProcedure:
			groupServiceUpdateMemberHandler.ServeHTTP(w, r)
		case GroupServiceDeleteMemberProcedure:
			groupServiceDeleteMemberHandler.ServeHTTP(w, r)
		case GroupServiceGetGroupBalancesProcedure:
			groupServiceGetGroupBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.CreateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.ListGroups is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.GetGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.UpdateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.DeleteGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.ListMembers is not implemented"))
}

func (UnimplementedGroupServiceHandler) AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.AddMember is not implemented"))
}

func (UnimplementedGroupServiceHandler) UpdateMember(context.Context, *connect.Request[api.UpdateMemberRequest]) (*connect.Response[api.UpdateMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.UpdateMember is not implemented"))
}

func (UnimplementedGroupServiceHandler) DeleteMember(context.Context, *connect.Request[api.DeleteMemberRequest]) (*connect.Response[api.DeleteMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.DeleteMember is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroupBalances(context.Context, *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.GroupService.GetGroupBalances is not implemented"))
}

// SplitServiceClient is a client for the pennywise.v1.SplitService service.
type SplitServiceClient interface {
	CreateSplit(context.Context, *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error)
	ListSplits(context.Context, *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error)
	GetSplit(context.Context, *connect.Request[api.GetSplitRequest]) (*connect.Response[api.GetSplitResponse], error)
	ListMemberSplits(context.Context, *connect.Request[api.ListMemberSplitsRequest]) (*connect.Response[api.ListMemberSplitsResponse], error)
}

// NewSplitServiceClient constructs a client for the pennywise.v1.SplitService service. It
// uses the JSON codec; options may add interceptors or other settings.
//
// The URL supplied here should be the base URL for the Connect server (for
// example, http://api.acme.com or https://acme.com/grpc).
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.ClientCodec()}, opts...)
	return &splitServiceClient{
		createSplit: connect.NewClient[api.CreateSplitRequest, api.CreateSplitResponse](
			httpClient,
			baseURL+SplitServiceCreateSplitProcedure,
			opts...,
		),
		listSplits: connect.NewClient[api.ListSplitsRequest, api.ListSplitsResponse](
			httpClient,
			baseURL+SplitServiceListSplitsProcedure,
			opts...,
		),
		getSplit: connect.NewClient[api.GetSplitRequest, api.GetSplitResponse](
			httpClient,
			baseURL+SplitServiceGetSplitProcedure,
			opts...,
		),
		listMemberSplits: connect.NewClient[api.ListMemberSplitsRequest, api.ListMemberSplitsResponse](
			httpClient,
			baseURL+SplitServiceListMemberSplitsProcedure,
			opts...,
		),
	}
}

// splitServiceClient implements SplitServiceClient.
type splitServiceClient struct {
	createSplit      *connect.Client[api.CreateSplitRequest, api.CreateSplitResponse]
	listSplits       *connect.Client[api.ListSplitsRequest, api.ListSplitsResponse]
	getSplit         *connect.Client[api.GetSplitRequest, api.GetSplitResponse]
	listMemberSplits *connect.Client[api.ListMemberSplitsRequest, api.ListMemberSplitsResponse]
}

// CreateSplit calls pennywise.v1.SplitService.CreateSplit.
func (c *splitServiceClient) CreateSplit(ctx context.Context, req *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	return c.createSplit.CallUnary(ctx, req)
}

// ListSplits calls pennywise.v1.SplitService.ListSplits.
func (c *splitServiceClient) ListSplits(ctx context.Context, req *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error) {
	return c.listSplits.CallUnary(ctx, req)
}

// GetSplit calls pennywise.v1.SplitService.GetSplit.
func (c *splitServiceClient) GetSplit(ctx context.Context, req *connect.Request[api.GetSplitRequest]) (*connect.Response[api.GetSplitResponse], error) {
	return c.getSplit.CallUnary(ctx, req)
}

// ListMemberSplits calls pennywise.v1.SplitService.ListMemberSplits.
func (c *splitServiceClient) ListMemberSplits(ctx context.Context, req *connect.Request[api.ListMemberSplitsRequest]) (*connect.Response[api.ListMemberSplitsResponse], error) {
	return c.listMemberSplits.CallUnary(ctx, req)
}

// SplitServiceHandler is an implementation of the pennywise.v1.SplitService service.
type SplitServiceHandler interface {
	CreateSplit(context.Context, *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error)
	ListSplits(context.Context, *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error)
	GetSplit(context.Context, *connect.Request[api.GetSplitRequest]) (*connect.Response[api.GetSplitResponse], error)
	ListMemberSplits(context.Context, *connect.Request[api.ListMemberSplitsRequest]) (*connect.Response[api.ListMemberSplitsResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with
// the JSON codec.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.HandlerCodecs()}, opts...)
	splitServiceCreateSplitHandler := connect.NewUnaryHandler(
		SplitServiceCreateSplitProcedure,
		svc.CreateSplit,
		connect.WithHandlerOptions(opts...),
	)
	splitServiceListSplitsHandler := connect.NewUnaryHandler(
		SplitServiceListSplitsProcedure,
		svc.ListSplits,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	splitServiceGetSplitHandler := connect.NewUnaryHandler(
		SplitServiceGetSplitProcedure,
		svc.GetSplit,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	splitServiceListMemberSplitsHandler := connect.NewUnaryHandler(
		SplitServiceListMemberSplitsProcedure,
		svc.ListMemberSplits,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	return "/pennywise.v1.SplitService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceCreateSplitProcedure:
			splitServiceCreateSplitHandler.ServeHTTP(w, r)
		case SplitServiceListSplitsProcedure:
			splitServiceListSplitsHandler.ServeHTTP(w, r)
		case SplitServiceGetSplitProcedure:
			splitServiceGetSplitHandler.ServeHTTP(w, r)
		case SplitServiceListMemberSplitsProcedure:
			splitServiceListMemberSplitsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSplitServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSplitServiceHandler struct{}

func (UnimplementedSplitServiceHandler) CreateSplit(context.Context, *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.SplitService.CreateSplit is not implemented"))
}

func (UnimplementedSplitServiceHandler) ListSplits(context.Context, *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.SplitService.ListSplits is not implemented"))
}

func (UnimplementedSplitServiceHandler) GetSplit(context.Context, *connect.Request[api.GetSplitRequest]) (*connect.Response[api.GetSplitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.SplitService.GetSplit is not implemented"))
}

func (UnimplementedSplitServiceHandler) ListMemberSplits(context.Context, *connect.Request[api.ListMemberSplitsRequest]) (*connect.Response[api.ListMemberSplitsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.SplitService.ListMemberSplits is not implemented"))
}

// NotificationServiceClient is a client for the pennywise.v1.NotificationService service.
type NotificationServiceClient interface {
	ListNotifications(context.Context, *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error)
}

// NewNotificationServiceClient constructs a client for the pennywise.v1.NotificationService service. It
// uses the JSON codec; options may add interceptors or other settings.
//
// The URL supplied here should be the base URL for the Connect server (for
// example, http://api.acme.com or https://acme.com/grpc).
func NewNotificationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NotificationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.ClientCodec()}, opts...)
	return &notificationServiceClient{
		listNotifications: connect.NewClient[api.ListNotificationsRequest, api.ListNotificationsResponse](
			httpClient,
			baseURL+NotificationServiceListNotificationsProcedure,
			opts...,
		),
		markNotificationRead: connect.NewClient[api.MarkNotificationReadRequest, api.MarkNotificationReadResponse](
			httpClient,
			baseURL+NotificationServiceMarkNotificationReadProcedure,
			opts...,
		),
	}
}

// notificationServiceClient implements NotificationServiceClient.
type notificationServiceClient struct {
	listNotifications    *connect.Client[api.ListNotificationsRequest, api.ListNotificationsResponse]
	markNotificationRead *connect.Client[api.MarkNotificationReadRequest, api.MarkNotificationReadResponse]
}

// ListNotifications calls pennywise.v1.NotificationService.ListNotifications.
func (c *notificationServiceClient) ListNotifications(ctx context.Context, req *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

// MarkNotificationRead calls pennywise.v1.NotificationService.MarkNotificationRead.
func (c *notificationServiceClient) MarkNotificationRead(ctx context.Context, req *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error) {
	return c.markNotificationRead.CallUnary(ctx, req)
}

// NotificationServiceHandler is an implementation of the pennywise.v1.NotificationService service.
type NotificationServiceHandler interface {
	ListNotifications(context.Context, *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error)
}

// NewNotificationServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with
// the JSON codec.
func NewNotificationServiceHandler(svc NotificationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.HandlerCodecs()}, opts...)
	notificationServiceListNotificationsHandler := connect.NewUnaryHandler(
		NotificationServiceListNotificationsProcedure,
		svc.ListNotifications,
		connect.WithIdempotency(connect.IdempotencyNoSideEffects),
		connect.WithHandlerOptions(opts...),
	)
	notificationServiceMarkNotificationReadHandler := connect.NewUnaryHandler(
		NotificationServiceMarkNotificationReadProcedure,
		svc.MarkNotificationRead,
		connect.WithHandlerOptions(opts...),
	)
	return "/pennywise.v1.NotificationService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case NotificationServiceListNotificationsProcedure:
			notificationServiceListNotificationsHandler.ServeHTTP(w, r)
		case NotificationServiceMarkNotificationReadProcedure:
			notificationServiceMarkNotificationReadHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedNotificationServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedNotificationServiceHandler struct{}

func (UnimplementedNotificationServiceHandler) ListNotifications(context.Context, *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.NotificationService.ListNotifications is not implemented"))
}

func (UnimplementedNotificationServiceHandler) MarkNotificationRead(context.Context, *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pennywise.v1.NotificationService.MarkNotificationRead is not implemented"))
}
