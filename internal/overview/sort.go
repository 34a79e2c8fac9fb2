package overview

import (
	"fmt"
	"sort"
	"strings"
)

// SortField 彙總列表可排序的欄位
// 每個欄位有自己的comparator，不做動態欄位查找
type SortField int

const (
	SortByProductName SortField = iota
	SortBySchool
	SortByCategories    // 以第一個分類排序
	SortBySizes         // 以總數量排序
	SortByTotalQuantity
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

type SortConfig struct {
	Field     SortField
	Direction Direction
}

// NextSortConfig 點擊欄位標題的切換規則
// 同欄位且目前是升冪 -> 降冪，其餘一律回到升冪
func NextSortConfig(current *SortConfig, field SortField) SortConfig {
	if current != nil && current.Field == field && current.Direction == Ascending {
		return SortConfig{Field: field, Direction: Descending}
	}
	return SortConfig{Field: field, Direction: Ascending}
}

// Sort 依設定排序彙總結果，回傳新slice不動原本的
// 使用stable sort，同值保持原本相對順序
func Sort(aggregates []ProductAggregate, cfg SortConfig) []ProductAggregate {
	sorted := make([]ProductAggregate, len(aggregates))
	copy(sorted, aggregates)

	less := lessFunc(cfg.Field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cfg.Direction == Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(field SortField) func(a, b ProductAggregate) bool {
	switch field {
	case SortBySchool:
		return func(a, b ProductAggregate) bool { return a.School < b.School }
	case SortByCategories:
		return func(a, b ProductAggregate) bool { return firstCategory(a) < firstCategory(b) }
	case SortBySizes, SortByTotalQuantity:
		return func(a, b ProductAggregate) bool { return a.TotalQuantity < b.TotalQuantity }
	default:
		return func(a, b ProductAggregate) bool { return a.ProductName < b.ProductName }
	}
}

func firstCategory(a ProductAggregate) string {
	if len(a.Categories) == 0 {
		return ""
	}
	return a.Categories[0]
}

// Search 搜尋彙總結果，大小寫不敏感的子字串比對
// 比對欄位: 商品名稱、學校、分類、"尺寸: 數量" 字串
func Search(aggregates []ProductAggregate, query string) []ProductAggregate {
	if query == "" {
		return aggregates
	}
	query = strings.ToLower(query)

	result := make([]ProductAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if matchesQuery(agg, query) {
			result = append(result, agg)
		}
	}
	return result
}

func matchesQuery(agg ProductAggregate, query string) bool {
	fields := []string{agg.ProductName, agg.School}
	fields = append(fields, agg.Categories...)
	for size, quantity := range agg.SizeQuantities {
		fields = append(fields, fmt.Sprintf("%s: %d", size, quantity))
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
