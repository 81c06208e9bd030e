package catalog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
	"github.com/xiebiao/modelstore/pkg/metrics"
	"github.com/xiebiao/modelstore/pkg/tracing"
)

// CategoryDTO 分类响应DTO
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VendorDTO 供应商响应DTO
type VendorDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductDTO 商品响应DTO
// 字段名沿用前端已有约定（catId/venId为驼峰）；cost/msrp以JSON数字输出
type ProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Cost        float64 `json:"cost"`
	MSRP        float64 `json:"msrp"`
	CatID       int64   `json:"catId"`
	VenID       int64   `json:"venId"`
	Category    string  `json:"category"`
	Vendor      string  `json:"vendor"`
}

func toProductDTO(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Qty:         p.Qty,
		Cost:        p.Cost.InexactFloat64(),
		MSRP:        p.MSRP.InexactFloat64(),
		CatID:       p.CatID,
		VenID:       p.VenID,
		Category:    p.Category,
		Vendor:      p.Vendor,
	}
}

// toProductDTOs 转换列表；结果永远不为nil，序列化为[]而不是null
func toProductDTOs(products []*catalog.Product) []ProductDTO {
	list := make([]ProductDTO, len(products))
	for i, p := range products {
		list[i] = toProductDTO(p)
	}
	return list
}

// observe 为一次目录查询创建Span并记录指标
func observe(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, "catalog."+op)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	metrics.ObserveCatalogQuery(op, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
