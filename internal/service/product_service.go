package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/omgcarlo/RetailSavvy/internal/dto"
	"github.com/omgcarlo/RetailSavvy/internal/model"
	"github.com/omgcarlo/RetailSavvy/internal/pos"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
)

const productListCacheKey = "products:all"

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	repo     repository.ProductRepository
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewProductService builds the service. rdb may be nil, which disables the
// short-lived list cache (memory backend, tests).
func NewProductService(repo repository.ProductRepository, rdb *redis.Client, cacheTTL time.Duration) ProductService {
	return &productService{repo: repo, rdb: rdb, cacheTTL: cacheTTL}
}

// List serves the full catalog, fronted by a short-TTL Redis cache that every
// successful write invalidates. A cache failure is never fatal: the store is
// the source of truth.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, productListCacheKey).Bytes(); err == nil {
			var products []model.Product
			if err := json.Unmarshal(raw, &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(products); err == nil {
			if err := s.rdb.Set(ctx, productListCacheKey, raw, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("product cache set failed")
			}
		}
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id int) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, storeErr(err)
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	price, err := pos.ParseAmount(req.Price)
	if err != nil {
		return nil, err
	}
	stock, err := pos.ParseCount(req.Stock)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:     req.Name,
		Price:    price,
		Stock:    stock,
		ImageURL: req.ImageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, storeErr(err)
	}
	s.invalidateCache(ctx)
	return p, nil
}

func (s *productService) Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, storeErr(err)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		price, err := pos.ParseAmount(*req.Price)
		if err != nil {
			return nil, err
		}
		p.Price = price
	}
	if req.Stock != nil {
		stock, err := pos.ParseCount(*req.Stock)
		if err != nil {
			return nil, err
		}
		p.Stock = stock
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, storeErr(err)
	}
	s.invalidateCache(ctx)
	return p, nil
}

// Delete is idempotent and never blocked by historical transaction items:
// their snapshotted prices keep old sales accurate after the product is gone.
func (s *productService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *productService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
