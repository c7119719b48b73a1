package ipinfo

import (
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// cacheKeyVersion tags cache keys with the response layout they hold,
// so a format change misses cleanly instead of decoding stale entries.
const cacheKeyVersion = "1"

// CacheKey derives the cache key for a canonical lookup target. Keys
// hash the target and append the layout version, so distinct targets
// never collide and old entries age out after an upgrade.
func CacheKey(target string) string {
	sum := xxh3.Hash128([]byte(target)).Bytes()
	return hex.EncodeToString(sum[:]) + ":" + cacheKeyVersion
}
