package cache

import (
	"context"
	"sync"
	"time"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"

	"github.com/goccy/go-json"
)

// Snapshot 某一时刻渲染好的页面
type Snapshot struct {
	Body       []byte    `json:"body"`
	RenderedAt time.Time `json:"rendered_at"`
}

// PageCache 首页快照缓存。窗口期内命中的请求直接返回旧快照，
// 即使底层数据已经变化，Clear 或过期后才会重新渲染。
type PageCache interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	Put(ctx context.Context, key string, snap *Snapshot) error
	Clear(ctx context.Context) error
}

type RedisPageCache struct {
	ttl time.Duration
}

func NewRedisPageCache(ttl time.Duration) *RedisPageCache {
	return &RedisPageCache{ttl: ttl}
}

func (c *RedisPageCache) Get(ctx context.Context, key string) (*Snapshot, error) {
	raw, err := redis.GetBytes(ctx, consts.PageIndexKey+key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var snap Snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *RedisPageCache) Put(ctx context.Context, key string, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.PageIndexKey+key, raw, c.ttl)
}

func (c *RedisPageCache) Clear(ctx context.Context) error {
	return redis.DeleteByPrefix(ctx, consts.PageIndexKey)
}

// MemoryPageCache 进程内实现，redis 未配置时（本地开发、测试）使用
type MemoryPageCache struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	snap      Snapshot
	expiresAt time.Time
}

func NewMemoryPageCache(ttl time.Duration) *MemoryPageCache {
	return &MemoryPageCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryPageCache) Get(_ context.Context, key string) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	snap := entry.snap
	return &snap, nil
}

func (c *MemoryPageCache) Put(_ context.Context, key string, snap *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{snap: *snap, expiresAt: time.Now().Add(c.ttl)}
	return nil
}

func (c *MemoryPageCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry)
	return nil
}
