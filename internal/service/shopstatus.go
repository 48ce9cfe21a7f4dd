package service

import (
	"context"
	"strings"
)

const DefaultCloseMessage = "Sorry, the shop is closed today. Please come back tomorrow."

type ShopStatusService struct {
	store ShopStatusStore
	clock Clock
}

func NewShopStatusService(store ShopStatusStore, clock Clock) *ShopStatusService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ShopStatusService{store: store, clock: clock}
}

func (s *ShopStatusService) todayKey() string {
	return s.clock.Now().Format("2006-01-02")
}

func (s *ShopStatusService) IsOpen(ctx context.Context) (bool, error) {
	return s.store.IsOpen(ctx)
}

func (s *ShopStatusService) Status(ctx context.Context) (bool, string, error) {
	open, err := s.store.IsOpen(ctx)
	if err != nil {
		return false, "", err
	}
	msg, err := s.store.CloseMessage(ctx)
	if err != nil {
		return false, "", err
	}
	if strings.TrimSpace(msg) == "" {
		msg = DefaultCloseMessage
	}
	return open, msg, nil
}

func (s *ShopStatusService) Open(ctx context.Context) error {
	return s.store.SetOpen(ctx, true)
}

// Close marks the shop closed with the given message and resets today's
// notice marker so customers see the popup again with the fresh message.
func (s *ShopStatusService) Close(ctx context.Context, msg string) error {
	if strings.TrimSpace(msg) == "" {
		msg = DefaultCloseMessage
	}
	if err := s.store.SetCloseMessage(ctx, msg); err != nil {
		return err
	}
	if err := s.store.SetOpen(ctx, false); err != nil {
		return err
	}
	return s.store.ClearNoticeShown(ctx, s.todayKey())
}

// ClosedNotice returns whether the closed popup should show for this visit.
// It shows at most once per calendar day while the shop stays closed.
func (s *ShopStatusService) ClosedNotice(ctx context.Context) (bool, string, error) {
	open, msg, err := s.Status(ctx)
	if err != nil {
		return false, "", err
	}
	if open {
		return false, "", nil
	}

	key := s.todayKey()
	shown, err := s.store.NoticeShown(ctx, key)
	if err != nil {
		return false, "", err
	}
	if shown {
		return false, msg, nil
	}
	if err := s.store.MarkNoticeShown(ctx, key); err != nil {
		return false, "", err
	}
	return true, msg, nil
}

var _ ShopStatusServiceInterface = (*ShopStatusService)(nil)
