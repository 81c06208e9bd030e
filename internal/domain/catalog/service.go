package catalog

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Service 目录查询服务（只读）
type Service interface {
	// ListCategories 查询分类；id为nil返回全部，否则返回0或1个
	ListCategories(ctx context.Context, id *int64) ([]*Category, error)

	// ListVendors 查询供应商；id为nil返回全部
	ListVendors(ctx context.Context, id *int64) ([]*Vendor, error)

	// ListProducts 按过滤条件查询商品，结果带分类/供应商名称
	ListProducts(ctx context.Context, filters map[string][]string) ([]*Product, error)

	// GetProductByID 查询单个商品，不存在返回ErrProductNotFound
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// ListProductsByCategory 查询分类下的商品
	// 分类不存在与分类下没有商品一样返回空列表，不是错误
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]*Product, error)

	// SearchByDescription 描述子串搜索（大小写不敏感）；text为空返回全部商品
	SearchByDescription(ctx context.Context, text string) ([]*Product, error)
}

type service struct {
	repo  Repository
	cache CategoryCache // 可为nil
}

// NewService 创建目录查询服务；cache为nil时不使用缓存
func NewService(repo Repository, cache CategoryCache) Service {
	return &service{repo: repo, cache: cache}
}

// ListCategories cache-aside：先读缓存，未命中查库后回填
// 缓存故障只记录日志，降级为直接查库
func (s *service) ListCategories(ctx context.Context, id *int64) ([]*Category, error) {
	if s.cache != nil {
		categories, hit, err := s.cache.GetCategories(ctx, id)
		if err != nil {
			zap.L().Warn("读取分类缓存失败，降级查库", zap.Error(err))
		} else if hit {
			return categories, nil
		}
	}

	categories, err := s.repo.FindCategories(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCategories(ctx, id, categories); err != nil {
			zap.L().Warn("回填分类缓存失败", zap.Error(err))
		}
	}
	return categories, nil
}

func (s *service) ListVendors(ctx context.Context, id *int64) ([]*Vendor, error) {
	return s.repo.FindVendors(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, filters map[string][]string) ([]*Product, error) {
	predicate, err := BuildPredicate(filters)
	if err != nil {
		return nil, err
	}
	return s.repo.FindProducts(ctx, predicate)
}

func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrProductNotFound
	}
	return s.repo.FindProductByID(ctx, id)
}

func (s *service) ListProductsByCategory(ctx context.Context, categoryID int64) ([]*Product, error) {
	return s.repo.FindProductsByCategory(ctx, categoryID)
}

func (s *service) SearchByDescription(ctx context.Context, text string) ([]*Product, error) {
	return s.repo.FindProducts(ctx, DescriptionContains(text))
}

// ParseID 解析分类/供应商ID；空字符串表示不过滤（返回nil）
func ParseID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &id, nil
}
