package service

import (
	"context"

	"github.com/RoyceAzure/lab/schoolshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/schoolshop/internal/overview"
)

type IOverviewService interface {
	GetProductOverview(ctx context.Context, schoolFilter, query string, sortCfg *overview.SortConfig) ([]overview.ProductAggregate, error)
	GetSchoolFilterValues(ctx context.Context) ([]string, error)
}

// OverviewService 後台商品彙總檢視
// 彙總本身是純函數，這裡只負責取訂單資料與套用搜尋/排序
type OverviewService struct {
	orderRepo db.IOrderRepository
}

func NewOverviewService(orderRepo db.IOrderRepository) *OverviewService {
	if orderRepo == nil {
		panic("overview service dependency orderRepo is nil")
	}
	return &OverviewService{orderRepo: orderRepo}
}

func (s *OverviewService) GetProductOverview(ctx context.Context, schoolFilter, query string, sortCfg *overview.SortConfig) ([]overview.ProductAggregate, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	aggregates := overview.Aggregate(orders, schoolFilter)
	aggregates = overview.Search(aggregates, query)
	if sortCfg != nil {
		aggregates = overview.Sort(aggregates, *sortCfg)
	}
	return aggregates, nil
}

// GetSchoolFilterValues 學校過濾下拉選單的選項，訂單中出現過的學校去重
func (s *OverviewService) GetSchoolFilterValues(ctx context.Context) ([]string, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	schools := make([]string, 0)
	for _, order := range orders {
		if _, ok := seen[order.School]; ok {
			continue
		}
		seen[order.School] = struct{}{}
		schools = append(schools, order.School)
	}
	return schools, nil
}

var _ IOverviewService = (*OverviewService)(nil)
