package ranking

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/infrastructure/repository"
	"github.com/vfg2006/storefront-api/internal/domain"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	defaultRankingSize = 20
	maxRankingSize     = 100
)

var (
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDatabaseOperation = errors.New("erro ao buscar ranking de lojas")
)

// RankingError carrega o código de API do erro
type RankingError struct {
	Err  error
	Code string
}

func (e *RankingError) Error() string {
	return e.Err.Error()
}

func (e *RankingError) Unwrap() error {
	return e.Err
}

type RankingService interface {
	GetStoreRanking(ctx context.Context, month, year string, limit int) (*domain.StoreRankingResponse, error)
}

type StoreRankingService struct {
	StoreRankingRepository repository.StoreRankingRepository
	location               *time.Location
	now                    func() time.Time
}

func NewStoreRankingService(storeRankingRepository repository.StoreRankingRepository, location *time.Location) *StoreRankingService {
	if location == nil {
		location = time.UTC
	}
	return &StoreRankingService{
		StoreRankingRepository: storeRankingRepository,
		location:               location,
		now:                    time.Now,
	}
}

// GetStoreRanking usa o mês corrente quando mês e ano não são informados
func (s *StoreRankingService) GetStoreRanking(ctx context.Context, month, year string, limit int) (*domain.StoreRankingResponse, error) {
	period := domain.PeriodOf(s.now().In(s.location))
	if month != "" || year != "" {
		parsed, err := domain.ParsePeriod(month, year)
		if err != nil {
			return nil, &RankingError{Err: ErrInvalidPeriod, Code: apiErrors.ErrInvalidFormat}
		}
		period = parsed
	}

	limit = utils.ClampInt(limit, defaultRankingSize, maxRankingSize)

	ranking, err := s.StoreRankingRepository.GetStoreRanking(ctx, period, uint64(limit))
	if err != nil {
		logrus.WithError(err).WithField("period", period.String()).Error("ranking: erro ao buscar ranking")
		return nil, &RankingError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation}
	}

	return &domain.StoreRankingResponse{
		Period:  period,
		Ranking: ranking,
	}, nil
}
