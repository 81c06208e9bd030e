package rdb

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
)

// CategoryModel GORM分类模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/catalog/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type CategoryModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:255;not null"`
}

// TableName 沿用原库表名
func (CategoryModel) TableName() string {
	return "Category"
}

// VendorModel GORM供应商模型
type VendorModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:255;not null"`
}

// TableName 沿用原库表名
func (VendorModel) TableName() string {
	return "Vendor"
}

// ProductModel GORM商品模型
// 教学要点:
// 1. Category/Vendor是belongs-to关联，Joins("Category")时GORM用字段名作为表别名
// 2. 列名catId/venId是驼峰，必须显式写column tag
type ProductModel struct {
	ID          string          `gorm:"column:id;primaryKey;size:32"`
	Name        string          `gorm:"column:name;size:255;not null"`
	Description string          `gorm:"column:description;type:text"`
	Qty         int             `gorm:"column:qty"`
	Cost        decimal.Decimal `gorm:"column:cost;type:decimal(10,2)"`
	MSRP        decimal.Decimal `gorm:"column:msrp;type:decimal(10,2)"`
	CatID       int64           `gorm:"column:catId;index"`
	VenID       int64           `gorm:"column:venId;index"`

	Category *CategoryModel `gorm:"foreignKey:CatID"`
	Vendor   *VendorModel   `gorm:"foreignKey:VenID"`
}

// TableName 沿用原库表名
func (ProductModel) TableName() string {
	return "Product"
}

func toCategoryEntity(m *CategoryModel) *catalog.Category {
	return &catalog.Category{ID: m.ID, Name: m.Name}
}

func toVendorEntity(m *VendorModel) *catalog.Vendor {
	return &catalog.Vendor{ID: m.ID, Name: m.Name}
}

// toProductEntity 转换时填充派生的分类/供应商名称
func toProductEntity(m *ProductModel) *catalog.Product {
	p := &catalog.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Qty:         m.Qty,
		Cost:        m.Cost,
		MSRP:        m.MSRP,
		CatID:       m.CatID,
		VenID:       m.VenID,
	}
	if m.Category != nil {
		p.Category = m.Category.Name
	}
	if m.Vendor != nil {
		p.Vendor = m.Vendor.Name
	}
	return p
}
