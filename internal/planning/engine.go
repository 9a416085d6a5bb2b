package planning

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CatalogResolver 把SKU(+变体)解析为展平的目录事实。
// 查无记录返回ErrProductNotFound等哨兵错误，按行降级而不中断整批。
type CatalogResolver interface {
	ResolveProduct(ctx context.Context, sellableProductID, variationID string) (*CatalogInfo, error)
}

// RecipeResolver 返回基础产品每升产出的原料配比，无配方返回空切片
type RecipeResolver interface {
	RecipeLines(ctx context.Context, baseProductID string) ([]RecipeLine, error)
}

// StockResolver 批量返回库存/价格快照，键不存在则结果中没有该键
type StockResolver interface {
	IngredientStocks(ctx context.Context, ingredientIDs []string) (map[string]IngredientStock, error)
	BottleStocks(ctx context.Context, bottleTypeIDs []string) (map[string]BottleStock, error)
}

// lookupConcurrency 外部查询的并发上限
const lookupConcurrency = 8

// Engine 生产需求与成本计算引擎。无共享可变状态，
// 每次Calculate都是 (请求, 外部快照) 的纯函数，可并发调用。
type Engine struct {
	catalog CatalogResolver
	recipes RecipeResolver
	stocks  StockResolver
}

func NewEngine(catalog CatalogResolver, recipes RecipeResolver, stocks StockResolver) *Engine {
	return &Engine{
		catalog: catalog,
		recipes: recipes,
		stocks:  stocks,
	}
}

// Calculate 执行完整计算管线：
// 校验 → 目录解析 → 配方获取 → BOM展开 → 聚合 → 库存比对 → 报告组装。
// I/O阶段按去重后的键并发扇出；展开/聚合/组装是同步纯计算。
// 行级错误累积在报告里随可计算部分一起返回；整批无一可算才返回EmptyPlanError。
func (e *Engine) Calculate(ctx context.Context, req PlanRequest) (*PlanReport, error) {
	valid, itemErrs := Normalize(req.Items)
	if len(valid) == 0 {
		return nil, &EmptyPlanError{ItemErrors: itemErrs}
	}

	resolved, resolveErrs, err := e.resolveItems(ctx, valid)
	if err != nil {
		return nil, err
	}
	itemErrs = append(itemErrs, resolveErrs...)
	if len(resolved) == 0 {
		return nil, &EmptyPlanError{ItemErrors: itemErrs}
	}

	recipes, err := e.fetchRecipes(ctx, resolved)
	if err != nil {
		return nil, err
	}

	exploded := make([]explodedItem, 0, len(resolved))
	for _, item := range resolved {
		exploded = append(exploded, explode(item, recipes[item.BaseProductID]))
	}

	agg := aggregate(exploded)

	ingredientStocks, bottleStocks, err := e.fetchStocks(ctx, agg)
	if err != nil {
		return nil, err
	}

	return assembleReport(agg, ingredientStocks, bottleStocks, missingRecipeWarnings(agg), itemErrs), nil
}

// resolveItems 目录解析阶段。同一 (SKU, 变体) 键只解析一次，
// 去重后的键集并发扇出，单键的慢查询不阻塞其他键。
func (e *Engine) resolveItems(ctx context.Context, items []NormalizedItem) ([]ResolvedItem, []ItemError, error) {
	type keyResult struct {
		info *CatalogInfo
		err  error
	}

	var keys []productKey
	seen := make(map[productKey]bool)
	for _, item := range items {
		key := productKey{SellableProductID: item.SellableProductID, VariationID: item.VariationID}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	results := make(map[productKey]keyResult, len(keys))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			info, err := e.catalog.ResolveProduct(gctx, key.SellableProductID, key.VariationID)
			if err != nil && !isCatalogItemError(err) {
				return fmt.Errorf("resolve product %s: %w", key.SellableProductID, err)
			}
			mu.Lock()
			results[key] = keyResult{info: info, err: err}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var resolved []ResolvedItem
	var errs []ItemError
	for _, item := range items {
		key := productKey{SellableProductID: item.SellableProductID, VariationID: item.VariationID}
		res := results[key]

		if res.err != nil {
			errs = append(errs, catalogItemError(item, res.err))
			continue
		}

		// 容量缺失是数据完整性问题，不能按零体积静默计算
		if res.info.CapacityML <= 0 {
			errs = append(errs, ItemError{
				Index:             item.Index,
				SellableProductID: item.SellableProductID,
				Kind:              ErrKindMissingCapacity,
				Message:           fmt.Sprintf("bottle capacity is missing or zero for product %s", item.SellableProductID),
			})
			continue
		}

		resolved = append(resolved, ResolvedItem{
			CatalogInfo: *res.info,
			Quantity:    item.Quantity,
		})
	}

	return resolved, errs, nil
}

// fetchRecipes 按去重后的基础产品键并发获取配方
func (e *Engine) fetchRecipes(ctx context.Context, items []ResolvedItem) (map[string][]RecipeLine, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, item := range items {
		if !seen[item.BaseProductID] {
			seen[item.BaseProductID] = true
			ids = append(ids, item.BaseProductID)
		}
	}

	recipes := make(map[string][]RecipeLine, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			lines, err := e.recipes.RecipeLines(gctx, id)
			if err != nil {
				return fmt.Errorf("fetch recipe for base product %s: %w", id, err)
			}
			mu.Lock()
			recipes[id] = lines
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return recipes, nil
}

// fetchStocks 原料与瓶型快照各取一次，两路并发
func (e *Engine) fetchStocks(ctx context.Context, agg *aggregation) (map[string]IngredientStock, map[string]BottleStock, error) {
	var ingredientStocks map[string]IngredientStock
	var bottleStocks map[string]BottleStock

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stocks, err := e.stocks.IngredientStocks(gctx, agg.ingredientIDs())
		if err != nil {
			return fmt.Errorf("fetch ingredient stocks: %w", err)
		}
		ingredientStocks = stocks
		return nil
	})
	g.Go(func() error {
		stocks, err := e.stocks.BottleStocks(gctx, agg.bottleTypeIDs())
		if err != nil {
			return fmt.Errorf("fetch bottle stocks: %w", err)
		}
		bottleStocks = stocks
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if ingredientStocks == nil {
		ingredientStocks = map[string]IngredientStock{}
	}
	if bottleStocks == nil {
		bottleStocks = map[string]BottleStock{}
	}
	return ingredientStocks, bottleStocks, nil
}

// missingRecipeWarnings 为无配方的SKU生成提示，按产品编码排序保证输出稳定
func missingRecipeWarnings(agg *aggregation) []string {
	var prods []*productAgg
	for _, prod := range agg.products {
		if prod.MissingRecipe {
			prods = append(prods, prod)
		}
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Info.ProductCode < prods[j].Info.ProductCode
	})

	var warnings []string
	for _, prod := range prods {
		warnings = append(warnings,
			fmt.Sprintf("no recipe defined for product %s; material cost calculated as zero", prod.Info.ProductCode))
	}
	return warnings
}

func isCatalogItemError(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrVariationNotFound) ||
		errors.Is(err, ErrVariationRequired) ||
		errors.Is(err, ErrVariationNotAllowed)
}

func catalogItemError(item NormalizedItem, err error) ItemError {
	kind := ErrKindProductNotFound
	switch {
	case errors.Is(err, ErrVariationNotFound):
		kind = ErrKindVariationNotFound
	case errors.Is(err, ErrVariationRequired):
		kind = ErrKindVariationRequired
	case errors.Is(err, ErrVariationNotAllowed):
		kind = ErrKindVariationNotAllowed
	}
	return ItemError{
		Index:             item.Index,
		SellableProductID: item.SellableProductID,
		Kind:              kind,
		Message:           err.Error(),
	}
}
