package rdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// likeEscape LIKE语句的转义字符（MySQL和SQLite都支持ESCAPE子句）
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// catalogRepository 目录仓储实现(GORM)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 把领域层的Condition翻译成GORM clause，不拼接用户输入
// 3. 商品查询总是LEFT JOIN分类和供应商，读取时计算派生名称
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

// FindCategories 查询分类
func (r *catalogRepository) FindCategories(ctx context.Context, id *int64) ([]*catalog.Category, error) {
	query := r.db.WithContext(ctx).Order("id")
	if id != nil {
		query = query.Where("id = ?", *id)
	}

	var models []CategoryModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询分类失败")
	}

	categories := make([]*catalog.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// FindVendors 查询供应商
func (r *catalogRepository) FindVendors(ctx context.Context, id *int64) ([]*catalog.Vendor, error) {
	query := r.db.WithContext(ctx).Order("id")
	if id != nil {
		query = query.Where("id = ?", *id)
	}

	var models []VendorModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询供应商失败")
	}

	vendors := make([]*catalog.Vendor, len(models))
	for i := range models {
		vendors[i] = toVendorEntity(&models[i])
	}
	return vendors, nil
}

// FindProductByID 根据ID查找商品
func (r *catalogRepository) FindProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	var model ProductModel
	err := r.products(ctx).
		Where(clause.Eq{Column: productColumn(catalog.FieldID), Value: id}).
		Take(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询商品失败")
	}

	return toProductEntity(&model), nil
}

// FindProducts 查询满足谓词的商品
func (r *catalogRepository) FindProducts(ctx context.Context, predicate catalog.Predicate) ([]*catalog.Product, error) {
	query := r.products(ctx)
	for _, cond := range predicate.Conditions {
		expr, err := toExpression(cond)
		if err != nil {
			return nil, err
		}
		query = query.Where(expr)
	}
	return r.findProducts(query)
}

// FindProductsByCategory 查询分类下的商品
func (r *catalogRepository) FindProductsByCategory(ctx context.Context, categoryID int64) ([]*catalog.Product, error) {
	query := r.products(ctx).Where(clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: "catId"},
		Value:  categoryID,
	})
	return r.findProducts(query)
}

// products 商品查询的公共部分：JOIN分类和供应商，按ID排序保证结果稳定
func (r *catalogRepository) products(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&ProductModel{}).
		Joins("Category").
		Joins("Vendor").
		Order(clause.OrderByColumn{Column: productColumn(catalog.FieldID)})
}

func (r *catalogRepository) findProducts(query *gorm.DB) ([]*catalog.Product, error) {
	var models []ProductModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询商品失败")
	}

	products := make([]*catalog.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}
	return products, nil
}

// toExpression 领域条件 → GORM表达式
func toExpression(cond catalog.Condition) (clause.Expression, error) {
	switch cond.Kind {
	case catalog.CondEquals:
		return clause.Eq{Column: productColumn(cond.Field), Value: cond.Value}, nil

	case catalog.CondContains:
		// 两侧都转大写，结果不依赖数据库的排序规则
		pattern := "%" + likeReplacer.Replace(cond.Value) + "%"
		return clause.Expr{
			SQL:  "UPPER(?) LIKE UPPER(?) ESCAPE '" + likeEscape + "'",
			Vars: []interface{}{productColumn(cond.Field), pattern},
		}, nil

	case catalog.CondRelatedName:
		return clause.Eq{
			Column: clause.Column{Table: string(cond.Relation), Name: "name"},
			Value:  cond.Value,
		}, nil

	case catalog.CondAtLeast:
		return clause.Gte{Column: productColumn(cond.Field), Value: cond.Bound}, nil

	case catalog.CondAtMost:
		return clause.Lte{Column: productColumn(cond.Field), Value: cond.Bound}, nil

	default:
		return nil, apperrors.Wrap(fmt.Errorf("unknown condition kind %d", cond.Kind), "不支持的查询条件")
	}
}

func productColumn(field catalog.Field) clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: string(field)}
}
