package catalog

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/angelmondragon/cantina-pos-backend/pkg/logger"
	"github.com/angelmondragon/cantina-pos-backend/pkg/normalize"
	"github.com/angelmondragon/cantina-pos-backend/pkg/redis"
)

// Service exposes the catalog read paths with a Redis read-through cache.
// The cache degrades, it never fails a request: cache errors are logged and
// the lookup falls back to the database.
type Service struct {
	repo ProductRepository
	kv   redis.KV
	ttl  time.Duration
	logg *logger.Logger
}

// NewService wires the catalog service. kv may be nil for cacheless
// deployments.
func NewService(repo ProductRepository, kv redis.KV, ttl time.Duration, logg *logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "product repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &Service{repo: repo, kv: kv, ttl: ttl, logg: logg}, nil
}

// ListCategory returns the products of one menu category.
func (s *Service) ListCategory(ctx context.Context, category string) ([]ProductDTO, error) {
	if category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	key := s.cacheKey("categories", normalize.Fold(category))
	return s.cached(ctx, key, func() ([]ProductDTO, error) {
		products, err := s.repo.ListByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		return toProductDTOs(products), nil
	})
}

// ListLiquor returns the bottles of one liquor family.
func (s *Service) ListLiquor(ctx context.Context, name string) ([]ProductDTO, error) {
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "liquor name is required")
	}
	key := s.cacheKey("liquors", normalize.Fold(name))
	return s.cached(ctx, key, func() ([]ProductDTO, error) {
		products, err := s.repo.ListLiquorSubcategory(ctx, name)
		if err != nil {
			return nil, err
		}
		return toProductDTOs(products), nil
	})
}

func (s *Service) cacheKey(parts ...string) string {
	if s.kv == nil {
		return ""
	}
	return s.kv.CatalogKey(parts...)
}

func (s *Service) cached(ctx context.Context, key string, load func() ([]ProductDTO, error)) ([]ProductDTO, error) {
	if s.kv != nil && key != "" {
		raw, err := s.kv.Get(ctx, key)
		if err == nil {
			var cached []ProductDTO
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			s.logg.Warn(ctx, "discarding undecodable catalog cache entry")
		} else if !redis.IsNil(err) {
			s.logg.Warn(ctx, "catalog cache read failed, falling back to database")
		}
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	if s.kv != nil && key != "" {
		payload, err := json.Marshal(products)
		if err == nil {
			if err := s.kv.Set(ctx, key, string(payload), s.ttl); err != nil {
				s.logg.Warn(ctx, "catalog cache write failed")
			}
		}
	}
	return products, nil
}
