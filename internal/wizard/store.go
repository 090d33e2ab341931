package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DraftStore persists in-flight drafts between wizard requests.
type DraftStore interface {
	Load(ctx context.Context, userID int64) (*Draft, error)
	Save(ctx context.Context, userID int64, draft *Draft) error
	Delete(ctx context.Context, userID int64) error
}

type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDraftStore{rdb: rdb, ttl: ttl}
}

func draftKey(userID int64) string {
	return fmt.Sprintf("wizard:draft:%d", userID)
}

func (s *RedisDraftStore) Load(ctx context.Context, userID int64) (*Draft, error) {
	payload, err := s.rdb.Get(ctx, draftKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, userID int64, draft *Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(userID), payload, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, draftKey(userID)).Err()
}

// MemoryDraftStore backs tests and single-process development runs.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[int64]*Draft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[int64]*Draft)}
}

func (s *MemoryDraftStore) Load(_ context.Context, userID int64) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[userID]
	if !ok {
		return nil, nil
	}
	copied := *draft
	return &copied, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, userID int64, draft *Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *draft
	s.drafts[userID] = &copied
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
	return nil
}
