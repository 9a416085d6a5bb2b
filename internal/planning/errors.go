package planning

import (
	"errors"
	"fmt"
)

// 目录解析错误，由CatalogResolver实现返回
var (
	ErrProductNotFound     = errors.New("sellable product not found")
	ErrVariationNotFound   = errors.New("product variation not found")
	ErrVariationRequired   = errors.New("variation_id is required for variation products")
	ErrVariationNotAllowed = errors.New("variation_id is not allowed for simple products")
)

// ItemError kind
const (
	ErrKindInvalidQuantity     = "invalid_quantity"
	ErrKindProductNotFound     = "product_not_found"
	ErrKindVariationNotFound   = "variation_not_found"
	ErrKindVariationRequired   = "variation_required"
	ErrKindVariationNotAllowed = "variation_not_allowed"
	ErrKindMissingCapacity     = "missing_capacity"
)

// ItemError 单行计划的校验/数据错误，不中断整批计算
type ItemError struct {
	Index             int    `json:"index"`
	SellableProductID string `json:"sellableProductId"`
	Kind              string `json:"kind"`
	Message           string `json:"message"`
}

func (e ItemError) Error() string {
	return fmt.Sprintf("item %d (%s): %s", e.Index, e.SellableProductID, e.Message)
}

// EmptyPlanError 整批都无法计算时的顶层失败
type EmptyPlanError struct {
	ItemErrors []ItemError
}

func (e *EmptyPlanError) Error() string {
	return "no valid planning items to calculate"
}
