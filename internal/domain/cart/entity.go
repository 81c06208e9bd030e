package cart

// Entry 购物车条目
// JSON字段名与前端约定一致：{"id": "2002S2", "qty": 3}
type Entry struct {
	ProductID string `json:"id"`
	Qty       int    `json:"qty"`
}

// Cart 购物车(聚合根)
// 业务规则:
// 1. 同一商品最多一个条目
// 2. 数量<=0表示"不存在"，不会以0或负数保存
// 3. 条目顺序为首次加入的顺序，修改数量不改变位置
type Cart struct {
	SessionID string
	Entries   []Entry
}

// NewCart 创建空购物车
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Entries: []Entry{}}
}

// IndexOf 查找商品所在位置，不存在返回-1
func (c *Cart) IndexOf(productID string) int {
	for i, e := range c.Entries {
		if e.ProductID == productID {
			return i
		}
	}
	return -1
}

// Qty 商品数量，不在购物车中返回0
func (c *Cart) Qty(productID string) int {
	if i := c.IndexOf(productID); i >= 0 {
		return c.Entries[i].Qty
	}
	return 0
}

// setQty 原位修改数量
func (c *Cart) setQty(index, qty int) {
	c.Entries[index].Qty = qty
}

// removeAt 删除条目，保持其余条目顺序
func (c *Cart) removeAt(index int) {
	c.Entries = append(c.Entries[:index], c.Entries[index+1:]...)
}

// add 追加到末尾
func (c *Cart) add(productID string, qty int) {
	c.Entries = append(c.Entries, Entry{ProductID: productID, Qty: qty})
}

