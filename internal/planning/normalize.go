package planning

import (
	"fmt"
)

// NormalizedItem 保留原始行号的合法计划行，行号用于错误定位
type NormalizedItem struct {
	Index int
	PlanningItem
}

// Normalize 校验计划明细。数量必须为正；非法行记入错误列表，合法行继续。
// 不在此处合并重复SKU，重复行由聚合阶段按键汇总。
func Normalize(items []PlanningItem) ([]NormalizedItem, []ItemError) {
	valid := make([]NormalizedItem, 0, len(items))
	var errs []ItemError

	for i, item := range items {
		if item.Quantity <= 0 {
			errs = append(errs, ItemError{
				Index:             i,
				SellableProductID: item.SellableProductID,
				Kind:              ErrKindInvalidQuantity,
				Message:           fmt.Sprintf("quantity must be positive, got %d", item.Quantity),
			})
			continue
		}
		valid = append(valid, NormalizedItem{Index: i, PlanningItem: item})
	}

	return valid, errs
}
