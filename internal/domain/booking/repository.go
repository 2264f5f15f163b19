package booking

import (
	"context"

	"github.com/HebertyRichards/API-web-barber/internal/models"
)

type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// ListOccupiedTimes retorna os horários já ocupados para o par
	// (data, barbeiro), em ordem de horário.
	ListOccupiedTimes(
		ctx context.Context,
		data string,
		barbeiro string,
	) ([]string, error)
}
