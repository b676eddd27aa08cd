package discogs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/xeptore/dcue/album"
	"github.com/xeptore/dcue/cache"
)

type Service struct {
	fetcher    Fetcher
	cache      *cache.Cache[[]byte]
	ttl        time.Duration
	normalizer *album.Normalizer
	logger     zerolog.Logger
}

func NewService(fetcher Fetcher, cache *cache.Cache[[]byte], ttl time.Duration, normalizer *album.Normalizer, logger zerolog.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		cache:      cache,
		ttl:        ttl,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Release fetches and decodes the record of ref. Raw records are shared
// through the cache, so several jobs referencing the same record fetch it
// once.
func (s *Service) Release(ctx context.Context, ref Ref) (album.Release, error) {
	k := ref.String()
	if raw, ok := s.cache.Get(k); ok {
		s.logger.Debug().Str("ref", k).Msg("Using cached record")
		return Decode(raw)
	}

	raw, err := s.cache.Fetch(k, s.ttl, func() ([]byte, error) { return s.fetcher.Fetch(ctx, ref) })
	if nil != err {
		return album.Release{}, err
	}
	return Decode(raw)
}

func (s *Service) Album(ctx context.Context, ref Ref) (album.Album, error) {
	rel, err := s.Release(ctx, ref)
	if nil != err {
		return album.Album{}, err
	}
	a := s.normalizer.Normalize(rel)
	s.logger.Debug().Str("ref", ref.String()).Func(a.Log).Msg("Normalized album")
	return a, nil
}
