package cart

import "github.com/xiebiao/modelstore/internal/domain/cart"

// EntryDTO 购物车条目
type EntryDTO struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// CartDTO 购物车响应：条目数组，按加入顺序排列
type CartDTO []EntryDTO

// toCartDTO 空购物车序列化为[]而不是null
func toCartDTO(c *cart.Cart) CartDTO {
	dto := make(CartDTO, len(c.Entries))
	for i, e := range c.Entries {
		dto[i] = EntryDTO{ID: e.ProductID, Qty: e.Qty}
	}
	return dto
}
