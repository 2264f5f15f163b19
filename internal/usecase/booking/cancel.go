package booking

import (
	"context"
	"errors"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/booking"
	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/HebertyRichards/API-web-barber/internal/mailer"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CancelResult struct {
	Appointment *models.Appointment
	EmailSent   bool
	EmailErr    error
}

type CancelAppointment struct {
	repo domain.Repository
	mail mailer.Sender
	log  *zap.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	mail mailer.Sender,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo: repo,
		mail: mail,
		log:  log,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id uint,
) (*CancelResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
		}
		return nil, err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return nil, err
	}

	res := &CancelResult{Appointment: ap}

	if ap.Email != "" {
		body := mailer.CancellationBody(
			ap.NomeCliente,
			displayDate(ap.DataAgendamento),
			ap.Horario,
			ap.Barbeiro,
			domain.SplitServices(ap.Servico),
		)

		if err := uc.mail.Send("Agendamento Cancelado", []string{ap.Email}, body); err != nil {
			uc.log.Warn("cancellation email failed",
				zap.Uint("agendamento_id", ap.ID),
				zap.Error(err),
			)
			res.EmailErr = err
		} else {
			res.EmailSent = true
		}
	}

	return res, nil
}
