package repository

import (
	"context"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/booking"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"gorm.io/gorm"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *BookingGormRepository) ListOccupiedTimes(
	ctx context.Context,
	data string,
	barbeiro string,
) ([]string, error) {

	var horarios []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("data_agendamento = ? AND barbeiro = ?", data, barbeiro).
		Order("horario ASC").
		Pluck("horario", &horarios).Error; err != nil {
		return nil, err
	}

	return horarios, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
