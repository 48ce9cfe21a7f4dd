package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"myfooddesk/internal/domain"
)

const (
	keyShopOpen     = "shop:open"
	keyShopCloseMsg = "shop:close_msg"

	cartTTL  = 24 * time.Hour
	salesTTL = 7 * 24 * time.Hour
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func cartKey(session string) string {
	return "cart:" + session
}

func (s *RedisStore) Entries(ctx context.Context, session string) ([]domain.CartEntry, error) {
	raw, err := s.Client.HGetAll(ctx, cartKey(session)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CartEntry, 0, len(raw))
	for field, val := range raw {
		productID, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(val)
		if err != nil || qty <= 0 {
			continue
		}
		entries = append(entries, domain.CartEntry{ProductID: productID, Qty: qty})
	}
	return entries, nil
}

func (s *RedisStore) IncrQty(ctx context.Context, session string, productID, delta int) (int, error) {
	key := cartKey(session)
	qty, err := s.Client.HIncrBy(ctx, key, strconv.Itoa(productID), int64(delta)).Result()
	if err != nil {
		return 0, err
	}
	s.Client.Expire(ctx, key, cartTTL)
	return int(qty), nil
}

func (s *RedisStore) SetQty(ctx context.Context, session string, productID, qty int) error {
	key := cartKey(session)
	if err := s.Client.HSet(ctx, key, strconv.Itoa(productID), qty).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, cartTTL).Err()
}

func (s *RedisStore) RemoveEntry(ctx context.Context, session string, productID int) error {
	return s.Client.HDel(ctx, cartKey(session), strconv.Itoa(productID)).Err()
}

func (s *RedisStore) Clear(ctx context.Context, session string) error {
	return s.Client.Del(ctx, cartKey(session)).Err()
}

// IsOpen defaults to open when the flag was never set.
func (s *RedisStore) IsOpen(ctx context.Context) (bool, error) {
	val, err := s.Client.Get(ctx, keyShopOpen).Result()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return val != "0", nil
}

func (s *RedisStore) SetOpen(ctx context.Context, open bool) error {
	val := "1"
	if !open {
		val = "0"
	}
	return s.Client.Set(ctx, keyShopOpen, val, 0).Err()
}

func (s *RedisStore) CloseMessage(ctx context.Context) (string, error) {
	msg, err := s.Client.Get(ctx, keyShopCloseMsg).Result()
	if err == redis.Nil {
		return "", nil
	}
	return msg, err
}

func (s *RedisStore) SetCloseMessage(ctx context.Context, msg string) error {
	return s.Client.Set(ctx, keyShopCloseMsg, msg, 0).Err()
}

func noticeKey(dateKey string) string {
	return "shop:closed_notice:" + dateKey
}

func (s *RedisStore) NoticeShown(ctx context.Context, dateKey string) (bool, error) {
	n, err := s.Client.Exists(ctx, noticeKey(dateKey)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) MarkNoticeShown(ctx context.Context, dateKey string) error {
	return s.Client.Set(ctx, noticeKey(dateKey), "1", 48*time.Hour).Err()
}

func (s *RedisStore) ClearNoticeShown(ctx context.Context, dateKey string) error {
	return s.Client.Del(ctx, noticeKey(dateKey)).Err()
}

func dailySalesKey(dateKey string) string {
	return "sales:daily:" + dateKey
}

func revenueKey(dateKey string) string {
	return "sales:revenue:" + dateKey
}

func (s *RedisStore) IncrementProductQty(ctx context.Context, dateKey string, productID, qty int) error {
	key := dailySalesKey(dateKey)
	if err := s.Client.ZIncrBy(ctx, key, float64(qty), strconv.Itoa(productID)).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, salesTTL).Err()
}

func (s *RedisStore) AddRevenue(ctx context.Context, dateKey string, amount float64) error {
	key := revenueKey(dateKey)
	if err := s.Client.IncrByFloat(ctx, key, amount).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, key, salesTTL).Err()
}

func (s *RedisStore) TopProducts(ctx context.Context, dateKey string, limit int) ([]domain.ProductSales, error) {
	entries, err := s.Client.ZRevRangeWithScores(ctx, dailySalesKey(dateKey), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.ProductSales, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		productID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		top = append(top, domain.ProductSales{ProductID: productID, Qty: e.Score})
	}
	return top, nil
}
