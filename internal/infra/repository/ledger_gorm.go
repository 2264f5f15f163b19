package repository

import (
	"context"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/ledger"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"gorm.io/gorm"
)

type LedgerGormRepository struct {
	db *gorm.DB
}

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{db: db}
}

func (r *LedgerGormRepository) CreateService(
	ctx context.Context,
	sv *models.PerformedService,
) error {
	return r.db.WithContext(ctx).Create(sv).Error
}

func (r *LedgerGormRepository) ListAll(
	ctx context.Context,
) ([]models.PerformedService, error) {

	var rows []models.PerformedService
	if err := r.db.WithContext(ctx).
		Order("id_servico_realizado ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *LedgerGormRepository) ListByBarber(
	ctx context.Context,
	barbeiro string,
) ([]models.PerformedService, error) {

	var rows []models.PerformedService
	if err := r.db.WithContext(ctx).
		Where("barbeiro = ?", barbeiro).
		Order("id_servico_realizado ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*LedgerGormRepository)(nil)
