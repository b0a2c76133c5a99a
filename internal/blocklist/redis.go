package blocklist

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storeは失効済みトークンのjtiを保持するRedisの集合。
// エントリはTTLで自動的に消える。TTLは失効対象のトークンの
// 最長寿命以上にすること（先に消えるとトークンが復活する）
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// DI
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

// Revokeはjtiを失効リストへ入れる。二重登録はTTLの上書きになるだけ
func (s *Store) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Set(ctx, jti, "", s.ttl).Err()
}

// IsRevokedはjtiが失効済みか。キーの存在だけを見る
func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
