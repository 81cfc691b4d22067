package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/infrastructure/repository/mocks"
	"github.com/vfg2006/storefront-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetStoreRanking(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	// 01/04 00:30 UTC ainda é março no horário de Brasília
	now := time.Date(2024, 4, 1, 0, 30, 0, 0, time.UTC)

	ranking := []*domain.StoreRankingItem{
		{Position: 1, TenantID: "tenant-1", NetSales: decimal.NewFromInt(900)},
		{Position: 2, TenantID: "tenant-2", NetSales: decimal.NewFromInt(400)},
	}

	tests := []struct {
		name           string
		month          string
		year           string
		limit          int
		expectedPeriod domain.SalesPeriod
		expectedLimit  uint64
	}{
		{
			name:           "mês corrente no fuso configurado",
			expectedPeriod: domain.SalesPeriod{Month: "03", Year: "2024"},
			expectedLimit:  20,
		},
		{
			name:           "período informado",
			month:          "12",
			year:           "2023",
			limit:          5,
			expectedPeriod: domain.SalesPeriod{Month: "12", Year: "2023"},
			expectedLimit:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockStoreRankingRepository(ctrl)
			repo.EXPECT().GetStoreRanking(gomock.Any(), tt.expectedPeriod, tt.expectedLimit).Return(ranking, nil)

			service := NewStoreRankingService(repo, brt)
			service.now = func() time.Time { return now }

			response, err := service.GetStoreRanking(context.Background(), tt.month, tt.year, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPeriod, response.Period)
			assert.Equal(t, ranking, response.Ranking)
		})
	}
}

func TestGetStoreRanking_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoreRankingRepository(ctrl)
	service := NewStoreRankingService(repo, nil)

	_, err := service.GetStoreRanking(context.Background(), "3", "2024", 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	repo.EXPECT().GetStoreRanking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	_, err = service.GetStoreRanking(context.Background(), "", "", 0)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
