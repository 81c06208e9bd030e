package catalog

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// FilterKey 可识别的商品过滤条件（封闭枚举）
// 设计说明:
// 1. 每个查询参数名对应一个枚举值，启动时建立 名称→枚举 的查找表
// 2. 未知参数名在查表阶段就被拒绝，不会拼进SQL
type FilterKey int

const (
	FilterID FilterKey = iota + 1
	FilterName
	FilterDescription
	FilterCategory
	FilterVendor
	FilterMinCost
	FilterMaxCost
	FilterMinMSRP
	FilterMaxMSRP
	FilterMinQty
	FilterMaxQty
)

// Field 商品表上可过滤的列
type Field string

const (
	FieldID          Field = "id"
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldQty         Field = "qty"
	FieldCost        Field = "cost"
	FieldMSRP        Field = "msrp"
)

// Relation 通过外键关联的表
type Relation string

const (
	RelationCategory Relation = "Category"
	RelationVendor   Relation = "Vendor"
)

// ConditionKind 单个条件的类型
type ConditionKind int

const (
	// CondEquals 列值精确相等
	CondEquals ConditionKind = iota + 1
	// CondContains 大小写不敏感的子串匹配（两侧统一转大写后比较）
	CondContains
	// CondRelatedName 关联表的name列精确相等
	CondRelatedName
	// CondAtLeast 列值 >= Bound
	CondAtLeast
	// CondAtMost 列值 <= Bound
	CondAtMost
)

// Condition 单个过滤条件
type Condition struct {
	Kind     ConditionKind
	Field    Field    // CondRelatedName时为空
	Relation Relation // 仅CondRelatedName使用
	Value    string   // 文本条件的值
	Bound    decimal.Decimal
}

// Predicate 多个条件的逻辑与；没有条件时匹配全部商品
type Predicate struct {
	Conditions []Condition
}

// IsEmpty 是否为恒真谓词
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// filterDef 查找表中的一项
type filterDef struct {
	key   FilterKey
	name  string
	build func(value string) (Condition, error)
}

var filterDefs = []filterDef{
	{FilterID, "id", equals(FieldID)},
	{FilterName, "name", contains(FieldName)},
	{FilterDescription, "description", contains(FieldDescription)},
	{FilterCategory, "category", relatedName(RelationCategory)},
	{FilterVendor, "vendor", relatedName(RelationVendor)},
	{FilterMinCost, "min_cost", bound(CondAtLeast, FieldCost)},
	{FilterMaxCost, "max_cost", bound(CondAtMost, FieldCost)},
	{FilterMinMSRP, "min_msrp", bound(CondAtLeast, FieldMSRP)},
	{FilterMaxMSRP, "max_msrp", bound(CondAtMost, FieldMSRP)},
	{FilterMinQty, "min_qty", bound(CondAtLeast, FieldQty)},
	{FilterMaxQty, "max_qty", bound(CondAtMost, FieldQty)},
}

var (
	keysByName = map[string]FilterKey{}
	defsByKey  = map[FilterKey]filterDef{}
)

func init() {
	for _, def := range filterDefs {
		keysByName[def.name] = def.key
		defsByKey[def.key] = def
	}
}

// ParseFilterKey 查询参数名 → FilterKey
func ParseFilterKey(name string) (FilterKey, error) {
	key, ok := keysByName[name]
	if !ok {
		return 0, apperrors.WithMessage(ErrUnknownFilterKey, fmt.Sprintf("不支持的过滤条件: %s", name))
	}
	return key, nil
}

// String 返回查询参数名
func (k FilterKey) String() string {
	if def, ok := defsByKey[k]; ok {
		return def.name
	}
	return fmt.Sprintf("FilterKey(%d)", int(k))
}

// Condition 用value构造该过滤条件
func (k FilterKey) Condition(value string) (Condition, error) {
	def, ok := defsByKey[k]
	if !ok {
		return Condition{}, apperrors.WithMessage(ErrUnknownFilterKey, fmt.Sprintf("不支持的过滤条件: %s", k))
	}
	return def.build(value)
}

// BuildPredicate 将查询参数转换为谓词
//
// 同一个参数出现多次时每个值都贡献一个条件，全部条件取AND。
// 参数名按字典序处理，保证生成的SQL稳定。
//
//	p, err := BuildPredicate(map[string][]string{
//	    "min_cost": {"10"},
//	    "max_cost": {"20"},
//	    "category": {"Toys"},
//	})
func BuildPredicate(filters map[string][]string) (Predicate, error) {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)

	var predicate Predicate
	for _, name := range names {
		key, err := ParseFilterKey(name)
		if err != nil {
			return Predicate{}, err
		}
		for _, value := range filters[name] {
			cond, err := key.Condition(value)
			if err != nil {
				return Predicate{}, err
			}
			predicate.Conditions = append(predicate.Conditions, cond)
		}
	}
	return predicate, nil
}

func equals(field Field) func(string) (Condition, error) {
	return func(value string) (Condition, error) {
		return Condition{Kind: CondEquals, Field: field, Value: value}, nil
	}
}

func contains(field Field) func(string) (Condition, error) {
	return func(value string) (Condition, error) {
		return Condition{Kind: CondContains, Field: field, Value: value}, nil
	}
}

func relatedName(rel Relation) func(string) (Condition, error) {
	return func(value string) (Condition, error) {
		return Condition{Kind: CondRelatedName, Relation: rel, Value: value}, nil
	}
}

func bound(kind ConditionKind, field Field) func(string) (Condition, error) {
	return func(value string) (Condition, error) {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return Condition{}, apperrors.WithMessage(ErrInvalidFilterValue,
				fmt.Sprintf("%s 需要数字，实际为 %q", field, value))
		}
		return Condition{Kind: kind, Field: field, Bound: d}, nil
	}
}

// DescriptionContains 描述子串匹配谓词；text为空时匹配全部商品
func DescriptionContains(text string) Predicate {
	if text == "" {
		return Predicate{}
	}
	return Predicate{Conditions: []Condition{{Kind: CondContains, Field: FieldDescription, Value: text}}}
}
