package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/pennywise/internal/access"
	"github.com/mmynk/pennywise/internal/splits"
	"github.com/mmynk/pennywise/pkg/api"
	"github.com/mmynk/pennywise/pkg/api/apiconnect"
)

// SplitService implements the Connect SplitService
type SplitService struct {
	apiconnect.UnimplementedSplitServiceHandler
	resolver *access.Resolver
	splits   *splits.Service
}

// NewSplitService creates a new SplitService.
func NewSplitService(resolver *access.Resolver, splitSvc *splits.Service) *SplitService {
	return &SplitService{resolver: resolver, splits: splitSvc}
}

// CreateSplit records a shared expense or income in a group. Any member may
// create one.
func (s *SplitService) CreateSplit(ctx context.Context, req *connect.Request[api.CreateSplitRequest]) (*connect.Response[api.CreateSplitResponse], error) {
	g, userID, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateSplit request received",
		"group_id", g.Group.ID,
		"user_id", userID,
		"type", req.Msg.Type,
		"method", req.Msg.SplitMethod,
		"members", len(req.Msg.MemberIDs),
	)

	result, err := s.splits.Create(ctx, g.Group, userID, splits.CreateRequest{
		Title:         req.Msg.Title,
		Type:          req.Msg.Type,
		Currency:      req.Msg.Currency,
		TotalAmount:   req.Msg.TotalAmount,
		OccurredAt:    req.Msg.OccurredAt,
		Note:          req.Msg.Note,
		SplitMethod:   req.Msg.SplitMethod,
		MemberIDs:     req.Msg.MemberIDs,
		CustomAmounts: req.Msg.CustomAmounts,
	})
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	return connect.NewResponse(&api.CreateSplitResponse{
		SplitTransaction:   toAPISplit(result.Split),
		Items:              toAPIItems(result.Items),
		NotificationsCount: result.NotificationsCount,
	}), nil
}

// ListSplits lists a group's splits, most recent first.
func (s *SplitService) ListSplits(ctx context.Context, req *connect.Request[api.ListSplitsRequest]) (*connect.Response[api.ListSplitsResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	list, err := s.splits.List(ctx, g.Group)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	out := make([]*api.SplitTransaction, len(list))
	for i, split := range list {
		out[i] = toAPISplit(split)
	}
	return connect.NewResponse(&api.ListSplitsResponse{Splits: out}), nil
}

// GetSplit returns one split with its items.
func (s *SplitService) GetSplit(ctx context.Context, req *connect.Request[api.GetSplitRequest]) (*connect.Response[api.GetSplitResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	detail, err := s.splits.Get(ctx, g.Group, req.Msg.SplitID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&api.GetSplitResponse{
		SplitTransaction: toAPISplit(detail.Split),
		Items:            toAPIItems(detail.Items),
	}), nil
}

// ListMemberSplits lists one member's items with their split metadata.
func (s *SplitService) ListMemberSplits(ctx context.Context, req *connect.Request[api.ListMemberSplitsRequest]) (*connect.Response[api.ListMemberSplitsResponse], error) {
	g, _, err := grant(ctx, s.resolver, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	items, err := s.splits.MemberItems(ctx, g.Group, req.Msg.MemberID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	out := make([]*api.MemberSplitItem, len(items))
	for i, item := range items {
		out[i] = toAPIMemberItem(item)
	}
	return connect.NewResponse(&api.ListMemberSplitsResponse{Items: out}), nil
}
