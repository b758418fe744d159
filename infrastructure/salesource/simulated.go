package salesource

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tawany-sales-analytics/internal/config"
	"github.com/vfg2006/tawany-sales-analytics/internal/domain"
)

var ErrEmptyCatalog = errors.New("simulation catalog has no products")

// SimulatedConfig define os parâmetros da simulação de vendas
type SimulatedConfig struct {
	Products     []string
	RecordCount  int
	Year         int
	MinQuantity  int
	MaxQuantity  int
	MinUnitPrice float64
	MaxUnitPrice float64
	MaxDay       int
	Seed         uint64 // 0 = semente aleatória
}

// SimulatedSource gera registros de venda aleatórios, simulando a coleta de
// dados de um ponto de venda
type SimulatedSource struct {
	config SimulatedConfig
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewSimulatedSource cria a fonte simulada a partir da configuração da aplicação
func NewSimulatedSource(cfg *config.Config) *SimulatedSource {
	return NewSimulatedSourceWithConfig(SimulatedConfig{
		Products:     cfg.Simulation.Products,
		RecordCount:  cfg.Simulation.RecordCount,
		Year:         cfg.Simulation.Year,
		MinQuantity:  cfg.Simulation.MinQuantity,
		MaxQuantity:  cfg.Simulation.MaxQuantity,
		MinUnitPrice: cfg.Simulation.MinUnitPrice,
		MaxUnitPrice: cfg.Simulation.MaxUnitPrice,
		MaxDay:       cfg.Simulation.MaxDay,
		Seed:         cfg.Simulation.Seed,
	})
}

func NewSimulatedSourceWithConfig(simulationConfig SimulatedConfig) *SimulatedSource {
	seed := simulationConfig.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logrus.WithFields(logrus.Fields{
		"products":     len(simulationConfig.Products),
		"record_count": simulationConfig.RecordCount,
		"year":         simulationConfig.Year,
	}).Debug("Configuração da simulação de vendas carregada")

	return &SimulatedSource{
		config: simulationConfig,
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// Fetch gera uma nova sequência de registros a cada chamada
func (s *SimulatedSource) Fetch(ctx context.Context) ([]domain.SaleRecord, error) {
	if len(s.config.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]domain.SaleRecord, 0, s.config.RecordCount)
	for i := 0; i < s.config.RecordCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, s.nextRecord())
	}

	logrus.WithField("records", len(records)).Debug("Registros de venda simulados")

	return records, nil
}

func (s *SimulatedSource) nextRecord() domain.SaleRecord {
	product := s.config.Products[s.rng.IntN(len(s.config.Products))]
	quantity := s.intBetween(s.config.MinQuantity, s.config.MaxQuantity)

	month := time.Month(s.intBetween(1, 12))
	day := s.intBetween(1, s.config.MaxDay)
	date := time.Date(s.config.Year, month, day, 0, 0, 0, 0, time.UTC)

	price := s.config.MinUnitPrice + s.rng.Float64()*(s.config.MaxUnitPrice-s.config.MinUnitPrice)

	return domain.NewSaleRecord(product, quantity, date, decimal.NewFromFloat(price))
}

// intBetween sorteia um inteiro no intervalo fechado [low, high]
func (s *SimulatedSource) intBetween(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.rng.IntN(high-low+1)
}
