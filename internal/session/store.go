package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no session exists for a subscriber URL.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session"

// Session is the per-subscriber flow state the workbench keeps between
// protocol calls. Everything is JSON so the frontend can round-trip it.
type Session struct {
	SubscriberURL string `json:"subscriber_url"`
	NPType        string `json:"np_type,omitempty"` // BAP or BPP
	Env           string `json:"env,omitempty"`
	ActiveFlow    string `json:"active_flow,omitempty"`

	Difficulty *Difficulty `json:"difficulty,omitempty"`

	// FlowState holds per-flow-step payload snapshots keyed by step ID.
	FlowState map[string]json.RawMessage `json:"flow_state,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Difficulty mirrors the workbench's test-difficulty switches.
type Difficulty struct {
	SensitiveTTL     bool `json:"sensitiveTTL"`
	UseGateway       bool `json:"useGateway"`
	HeaderValidation bool `json:"headerValidation"`
	TotalDifficulty  int  `json:"totalDifficulty"`
}

// cmdable is the slice of the redis client the store needs; tests stub it.
type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store keeps sessions in Redis keyed by subscriber URL.
type Store struct {
	rdb cmdable
	ttl time.Duration
	now func() time.Time
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return newStore(rdb, ttl)
}

func newStore(rdb cmdable, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl, now: time.Now}
}

func key(subscriberURL string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, subscriberURL)
}

// Get returns the session for a subscriber URL, or ErrNotFound.
func (s *Store) Get(ctx context.Context, subscriberURL string) (*Session, error) {
	val, err := s.rdb.Get(ctx, key(subscriberURL)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// Set stores the session under its subscriber URL with the store TTL,
// stamping created/updated timestamps.
func (s *Store) Set(ctx context.Context, sess *Session) error {
	if sess == nil || sess.SubscriberURL == "" {
		return errors.New("subscriber_url is required")
	}
	now := s.now().UTC().Format(time.RFC3339)
	if sess.CreatedAt == "" {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.rdb.Set(ctx, key(sess.SubscriberURL), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

// Exists reports whether a session is present without fetching it.
func (s *Store) Exists(ctx context.Context, subscriberURL string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(subscriberURL)).Result()
	if err != nil {
		return false, fmt.Errorf("session exists: %w", err)
	}
	return n > 0, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, subscriberURL string) error {
	if err := s.rdb.Del(ctx, key(subscriberURL)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
