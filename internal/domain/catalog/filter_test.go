package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

func TestParseFilterKey(t *testing.T) {
	for _, def := range filterDefs {
		key, err := ParseFilterKey(def.name)
		require.NoError(t, err)
		assert.Equal(t, def.key, key)
		assert.Equal(t, def.name, key.String())
	}

	_, err := ParseFilterKey("color")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnknownFilterKey))
	assert.ErrorIs(t, err, ErrUnknownFilterKey)
}

func TestFilterKeyCondition(t *testing.T) {
	tests := []struct {
		name string
		key  FilterKey
		in   string
		want Condition
	}{
		{"id精确匹配", FilterID, "2002S2", Condition{Kind: CondEquals, Field: FieldID, Value: "2002S2"}},
		{"name子串", FilterName, "jag", Condition{Kind: CondContains, Field: FieldName, Value: "jag"}},
		{"description子串", FilterDescription, "Scale", Condition{Kind: CondContains, Field: FieldDescription, Value: "Scale"}},
		{"分类名称", FilterCategory, "Toys", Condition{Kind: CondRelatedName, Relation: RelationCategory, Value: "Toys"}},
		{"供应商名称", FilterVendor, "Acme", Condition{Kind: CondRelatedName, Relation: RelationVendor, Value: "Acme"}},
		{"最低价", FilterMinCost, "10", Condition{Kind: CondAtLeast, Field: FieldCost, Bound: decimal.NewFromInt(10)}},
		{"最高价", FilterMaxCost, "20.5", Condition{Kind: CondAtMost, Field: FieldCost, Bound: decimal.RequireFromString("20.5")}},
		{"最低建议零售价", FilterMinMSRP, "1", Condition{Kind: CondAtLeast, Field: FieldMSRP, Bound: decimal.NewFromInt(1)}},
		{"最高建议零售价", FilterMaxMSRP, "99", Condition{Kind: CondAtMost, Field: FieldMSRP, Bound: decimal.NewFromInt(99)}},
		{"最低库存", FilterMinQty, "3", Condition{Kind: CondAtLeast, Field: FieldQty, Bound: decimal.NewFromInt(3)}},
		{"最高库存", FilterMaxQty, "0", Condition{Kind: CondAtMost, Field: FieldQty, Bound: decimal.Zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.key.Condition(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Field, got.Field)
			assert.Equal(t, tt.want.Relation, got.Relation)
			assert.Equal(t, tt.want.Value, got.Value)
			assert.True(t, tt.want.Bound.Equal(got.Bound), "bound: want %s got %s", tt.want.Bound, got.Bound)
		})
	}
}

func TestFilterKeyCondition_InvalidNumber(t *testing.T) {
	for _, key := range []FilterKey{FilterMinCost, FilterMaxCost, FilterMinMSRP, FilterMaxMSRP, FilterMinQty, FilterMaxQty} {
		_, err := key.Condition("ten")
		require.Error(t, err, key.String())
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidFilterValue))

		_, err = key.Condition("")
		assert.Error(t, err, key.String())
	}
}

func TestBuildPredicate(t *testing.T) {
	t.Run("空参数是恒真谓词", func(t *testing.T) {
		p, err := BuildPredicate(nil)
		require.NoError(t, err)
		assert.True(t, p.IsEmpty())

		p, err = BuildPredicate(map[string][]string{})
		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})

	t.Run("多个条件按参数名排序", func(t *testing.T) {
		p, err := BuildPredicate(map[string][]string{
			"min_cost": {"10"},
			"max_cost": {"20"},
			"category": {"Toys"},
		})
		require.NoError(t, err)
		require.Len(t, p.Conditions, 3)
		assert.Equal(t, CondRelatedName, p.Conditions[0].Kind)
		assert.Equal(t, CondAtMost, p.Conditions[1].Kind)
		assert.Equal(t, CondAtLeast, p.Conditions[2].Kind)
	})

	t.Run("重复参数每个值一个条件", func(t *testing.T) {
		p, err := BuildPredicate(map[string][]string{"name": {"jag", "xk"}})
		require.NoError(t, err)
		require.Len(t, p.Conditions, 2)
		assert.Equal(t, "jag", p.Conditions[0].Value)
		assert.Equal(t, "xk", p.Conditions[1].Value)
	})

	t.Run("未知参数", func(t *testing.T) {
		_, err := BuildPredicate(map[string][]string{"name": {"x"}, "sort": {"asc"}})
		assert.ErrorIs(t, err, ErrUnknownFilterKey)
	})

	t.Run("非法数字", func(t *testing.T) {
		_, err := BuildPredicate(map[string][]string{"min_qty": {"many"}})
		assert.ErrorIs(t, err, ErrInvalidFilterValue)
	})
}

func TestDescriptionContains(t *testing.T) {
	assert.True(t, DescriptionContains("").IsEmpty())

	p := DescriptionContains("scale")
	require.Len(t, p.Conditions, 1)
	assert.Equal(t, Condition{Kind: CondContains, Field: FieldDescription, Value: "scale"}, p.Conditions[0])
}
