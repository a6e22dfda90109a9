package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/pennywise/internal/apperr"
	"github.com/mmynk/pennywise/internal/storage"
	"github.com/mmynk/pennywise/pkg/api"
	"github.com/mmynk/pennywise/pkg/api/apiconnect"
)

// NotificationService implements the Connect NotificationService
type NotificationService struct {
	apiconnect.UnimplementedNotificationServiceHandler
	store storage.NotificationStore
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store storage.NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// ListNotifications returns the caller's inbox, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, req *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.store.ListNotificationsForUser(ctx, userID)
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to list notifications", err))
	}

	resp := &api.ListNotificationsResponse{Notifications: make([]*api.Notification, len(list))}
	for i, n := range list {
		resp.Notifications[i] = toAPINotification(n)
		if !n.IsRead {
			resp.UnreadCount++
		}
	}
	return connect.NewResponse(resp), nil
}

// MarkNotificationRead flags one of the caller's notifications as read.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, req *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.store.MarkNotificationRead(ctx, req.Msg.NotificationID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, toConnectError(ctx, apperr.NotFound("notification not found"))
	}
	if err != nil {
		return nil, toConnectError(ctx, apperr.Internal("failed to update notification", err))
	}
	return connect.NewResponse(&api.MarkNotificationReadResponse{Notification: toAPINotification(n)}), nil
}
