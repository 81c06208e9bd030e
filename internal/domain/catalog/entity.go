package catalog

import (
	"github.com/shopspring/decimal"
)

// Category 商品分类（只读参考数据）
type Category struct {
	ID   int64
	Name string
}

// Vendor 供应商（只读参考数据，结构与Category相同）
type Vendor struct {
	ID   int64
	Name string
}

// Product 商品实体
// DDD设计说明:
// 1. ID是字符串主键（如 "2002S2"），不是自增整数
// 2. Cost/MSRP使用decimal避免浮点误差
// 3. Category/Vendor是读取时通过外键JOIN得到的名称，不落库、不缓存
type Product struct {
	ID          string
	Name        string
	Description string
	Qty         int
	Cost        decimal.Decimal
	MSRP        decimal.Decimal
	CatID       int64
	VenID       int64

	Category string // 分类名（派生字段）
	Vendor   string // 供应商名（派生字段）
}

