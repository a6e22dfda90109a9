package service

import (
	"time"

	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/money"
	"github.com/mmynk/pennywise/pkg/api"
)

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   unixTime(u.CreatedAt),
	}
}

func toAPIGroup(g *models.Group, memberCount int) *api.Group {
	return &api.Group{
		ID:          g.ID,
		Name:        g.Name,
		OwnerUserID: g.OwnerUserID,
		MemberCount: memberCount,
		CreatedAt:   unixTime(g.CreatedAt),
	}
}

func toAPIMember(m *models.GroupMember) *api.Member {
	return &api.Member{
		ID:           m.ID,
		GroupID:      m.GroupID,
		DisplayName:  m.DisplayName,
		Phone:        m.Phone,
		LinkedUserID: m.LinkedUserID,
		Role:         string(m.Role),
		CreatedAt:    unixTime(m.CreatedAt),
	}
}

func toAPIMembers(members []*models.GroupMember) []*api.Member {
	out := make([]*api.Member, len(members))
	for i, m := range members {
		out[i] = toAPIMember(m)
	}
	return out
}

func toAPISplit(s *models.SplitTransaction) *api.SplitTransaction {
	return &api.SplitTransaction{
		ID:               s.ID,
		GroupID:          s.GroupID,
		CreatedByUserID:  s.CreatedByUserID,
		Title:            s.Title,
		Type:             string(s.Type),
		Currency:         s.Currency,
		TotalAmountMinor: s.TotalAmountMinor,
		TotalAmount:      money.FormatMinor(s.TotalAmountMinor),
		OccurredAt:       s.OccurredAt,
		Note:             s.Note,
		CreatedAt:        unixTime(s.CreatedAt),
	}
}

func toAPIItem(item *models.SplitTransactionItem) *api.SplitItem {
	return &api.SplitItem{
		ID:                 item.ID,
		SplitTransactionID: item.SplitTransactionID,
		GroupID:            item.GroupID,
		MemberID:           item.MemberID,
		AmountMinor:        item.AmountMinor,
		Amount:             money.FormatMinor(item.AmountMinor),
		Direction:          string(item.Direction),
		Position:           item.Position,
	}
}

func toAPIItems(items []*models.SplitTransactionItem) []*api.SplitItem {
	out := make([]*api.SplitItem, len(items))
	for i, item := range items {
		out[i] = toAPIItem(item)
	}
	return out
}

func toAPIMemberItem(item *models.MemberSplitItem) *api.MemberSplitItem {
	return &api.MemberSplitItem{
		SplitItem:        *toAPIItem(&item.SplitTransactionItem),
		Title:            item.Title,
		Type:             string(item.Type),
		Currency:         item.Currency,
		TotalAmountMinor: item.TotalAmountMinor,
		OccurredAt:       item.OccurredAt,
	}
}

func toAPINotification(n *models.Notification) *api.Notification {
	return &api.Notification{
		ID:                 n.ID,
		GroupID:            n.GroupID,
		SplitTransactionID: n.SplitTransactionID,
		ToMemberID:         n.ToMemberID,
		ToUserID:           n.ToUserID,
		Title:              n.Title,
		Body:               n.Body,
		IsRead:             n.IsRead,
		CreatedAt:          unixTime(n.CreatedAt),
	}
}
