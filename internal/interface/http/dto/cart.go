package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UpdateCartRequest 更新购物车请求
// qty必填但允许为0（0或负数表示移除），因此用指针区分"未传"和"传了0"
type UpdateCartRequest struct {
	ID  string    `json:"id" binding:"required" example:"S10_1678"`
	Qty *Quantity `json:"qty" binding:"required" example:"2"`
}

// Quantity 购物车数量
// 前端历史上既发送数字也发送数字字符串（"2"），两种都接受；其他类型视为参数错误
type Quantity int

// UnmarshalJSON 接受 2 或 "2"
func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("qty必须是整数: %s", data)
	}
	*q = Quantity(n)
	return nil
}

// Int 返回int值
func (q *Quantity) Int() int {
	return int(*q)
}
