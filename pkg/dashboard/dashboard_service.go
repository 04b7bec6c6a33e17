package dashboard

import (
	"context"
	"time"

	"inventory-brew/domain"
	"inventory-brew/pkg/transaction"
)

type (
	DashboardService interface {
		GetSummary(ctx context.Context, query domain.DashboardQuery) (domain.DashboardSummaryResponse, error)
	}

	dashboardService struct {
		dashboardRepository   DashboardRepository
		transactionRepository transaction.TransactionRepository
	}
)

func NewDashboardService(dashboardRepository DashboardRepository, transactionRepository transaction.TransactionRepository) DashboardService {
	return &dashboardService{
		dashboardRepository:   dashboardRepository,
		transactionRepository: transactionRepository,
	}
}

// GetSummary reads each aggregate with a separate query; the numbers are a
// point-in-time snapshot, not a single consistent read.
func (s *dashboardService) GetSummary(ctx context.Context, query domain.DashboardQuery) (domain.DashboardSummaryResponse, error) {
	ingredientCount, err := s.dashboardRepository.CountIngredients(ctx, query.IncludeInactive)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}
	recipeCount, err := s.dashboardRepository.CountRecipes(ctx, query.IncludeInactive)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}
	lowStockCount, err := s.dashboardRepository.CountLowStock(ctx, query.IncludeInactive)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}
	stockValue, err := s.dashboardRepository.SumStockValue(ctx, query.IncludeInactive)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}

	lowStock, err := s.dashboardRepository.FindLowStock(ctx, query.IncludeInactive, query.LowStockLimit)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}
	lowStockItems := make([]domain.LowStockItem, 0, len(lowStock))
	for _, ingredient := range lowStock {
		lowStockItems = append(lowStockItems, domain.LowStockItem{
			ID:            ingredient.ID,
			Name:          ingredient.Name,
			Unit:          ingredient.Unit,
			StockQuantity: ingredient.StockQuantity,
			ReorderLevel:  ingredient.ReorderLevel,
			Shortfall:     domain.Round(ingredient.ReorderLevel - ingredient.StockQuantity),
			StockValue:    domain.Round(ingredient.StockQuantity * ingredient.CostPerUnit),
			IsActive:      ingredient.IsActive,
		})
	}

	recent, err := s.transactionRepository.FindRecent(ctx, query.RecentTransactionsLimit)
	if err != nil {
		return domain.DashboardSummaryResponse{}, err
	}
	recentItems := make([]domain.TransactionListItem, 0, len(recent))
	for _, entry := range recent {
		recentItems = append(recentItems, domain.TransactionListItem{InventoryTransaction: entry})
	}
	if query.IncludeRelated {
		if err := transaction.EnrichRelated(ctx, s.transactionRepository, recentItems); err != nil {
			return domain.DashboardSummaryResponse{}, err
		}
	}

	return domain.DashboardSummaryResponse{
		Summary: domain.DashboardSummary{
			IngredientCount: ingredientCount,
			RecipeCount:     recipeCount,
			LowStockCount:   lowStockCount,
			TotalStockValue: domain.Round(stockValue),
		},
		LowStockItems:      lowStockItems,
		RecentTransactions: recentItems,
		Meta: domain.DashboardMeta{
			IncludeInactive:         query.IncludeInactive,
			LowStockLimit:           query.LowStockLimit,
			RecentTransactionsLimit: query.RecentTransactionsLimit,
			GeneratedAt:             time.Now().UTC(),
		},
	}, nil
}
