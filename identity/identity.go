package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/whyleloop/whyleloop-go/storage"
)

// FingerprintKey is the storage key under which the device fingerprint is
// cached.
const FingerprintKey = "whyleloop_device_fingerprint"

// fingerprintVersion prefixes every generated token. Changing the hashing
// scheme bumps the version; cached tokens keep working because the cache
// always wins over recomputation.
const fingerprintVersion = "v1"

// Resolver derives and caches a stable anonymous identifier for the current
// device. Resolution never fails: it gates every anonymous restore call, so
// any internal error degrades to a timestamp-seeded token instead of
// propagating.
type Resolver struct {
	store    storage.Store
	provider AttributeProvider
	now      func() time.Time
}

// NewResolver constructs a Resolver over the given store and attribute
// provider.
func NewResolver(store storage.Store, provider AttributeProvider) *Resolver {
	return &Resolver{
		store:    store,
		provider: provider,
		now:      time.Now,
	}
}

// Resolve returns the device fingerprint, generating and persisting one on
// first use. A cached value always wins over recomputation. Concurrent
// first-time calls may race on the write; last write wins and every call
// still returns a validly formed token.
func (r *Resolver) Resolve(ctx context.Context) string {
	cached, found, err := r.store.Get(FingerprintKey)
	if err == nil && found && len(cached) > 0 {
		return string(cached)
	}
	if err != nil {
		log.Debug().Err(err).Msg("fingerprint cache read failed, regenerating")
	}

	token := Fingerprint(r.seed())

	if err := r.store.Set(FingerprintKey, []byte(token)); err != nil {
		log.Debug().Err(err).Msg("fingerprint cache write failed")
	}

	return token
}

func (r *Resolver) seed() string {
	if r.provider != nil {
		attrs, err := r.provider.Attributes()
		if err == nil {
			return strings.Join([]string{
				attrs.Platform,
				attrs.InstallID,
				attrs.Model,
				attrs.Manufacturer,
				attrs.OSName,
				attrs.OSVersion,
			}, "|")
		}
		log.Debug().Err(err).Msg("device attribute collection failed, using timestamp seed")
	}

	return strconv.FormatInt(r.now().UnixNano(), 10)
}

// Fingerprint reduces a seed string to a fixed-width versioned token.
func Fingerprint(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return fingerprintVersion + hex.EncodeToString(sum[:])[:32]
}
