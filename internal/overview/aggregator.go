package overview

import (
	"github.com/RoyceAzure/lab/schoolshop/internal/domain/model"
)

// AllSchools 不過濾學校的哨兵值
const AllSchools = "all"

// ProductAggregate 後台商品彙總檢視的一列
// 各尺寸要生產/訂購的數量統計
type ProductAggregate struct {
	ProductName    string         `json:"product_name"`
	ImageRef       string         `json:"image_ref"`
	School         string         `json:"school"`
	Categories     []string       `json:"categories"`
	SizeQuantities map[string]int `json:"size_quantities"`
	TotalQuantity  int            `json:"total_quantity"`
}

// Aggregate 將訂單品項彙總成每個商品的尺寸數量統計
// 純函數，不修改輸入
//
// 規則:
//   - schoolFilter 不是 AllSchools 時，只保留該學校的訂單，
//     沒有符合的學校時回傳空slice
//   - 以 ProductName 精確比對分組，輸出順序為首次出現順序
//   - ImageRef/School 取該商品名稱第一次出現的值，之後不同學校
//     的同名商品不會蓋掉 (沿用既有行為，分組鍵只有商品名稱)
//   - Categories 保留所有出現過的分類，依出現順序去重
//   - 數量累加進 SizeQuantities[size] 與 TotalQuantity
func Aggregate(orders []model.Order, schoolFilter string) []ProductAggregate {
	byName := make(map[string]*ProductAggregate)
	names := make([]string, 0)

	for _, order := range orders {
		if schoolFilter != AllSchools && order.School != schoolFilter {
			continue
		}
		for _, item := range order.LineItems {
			agg, ok := byName[item.ProductName]
			if !ok {
				agg = &ProductAggregate{
					ProductName:    item.ProductName,
					ImageRef:       item.ImageRef,
					School:         order.School,
					Categories:     make([]string, 0, 1),
					SizeQuantities: make(map[string]int),
				}
				byName[item.ProductName] = agg
				names = append(names, item.ProductName)
			}

			agg.SizeQuantities[item.Size] += item.Quantity
			agg.TotalQuantity += item.Quantity

			if !containsString(agg.Categories, item.Category) {
				agg.Categories = append(agg.Categories, item.Category)
			}
		}
	}

	result := make([]ProductAggregate, 0, len(names))
	for _, name := range names {
		result = append(result, *byName[name])
	}
	return result
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
