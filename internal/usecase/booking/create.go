package booking

import (
	"context"
	"time"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/booking"
	"github.com/HebertyRichards/API-web-barber/internal/mailer"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"go.uber.org/zap"
)

// CreateResult separa o destino da escrita do destino do e-mail: a escrita
// confirmada nunca é desfeita por falha de notificação.
type CreateResult struct {
	Appointment *models.Appointment
	EmailSent   bool
	EmailErr    error
}

type CreateAppointment struct {
	repo domain.Repository
	mail mailer.Sender
	log  *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	mail mailer.Sender,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo: repo,
		mail: mail,
		log:  log,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*CreateResult, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		NomeCliente:     in.NomeCliente,
		Telefone:        in.Telefone,
		Email:           in.Email,
		DataAgendamento: in.Data,
		Horario:         in.Horario,
		Servico:         domain.JoinServices(in.Servicos),
		Barbeiro:        in.Barbeiro,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	res := &CreateResult{Appointment: ap}

	if in.Email != "" {
		body := mailer.ConfirmationBody(
			in.NomeCliente,
			displayDate(in.Data),
			in.Horario,
			in.Barbeiro,
			in.Servicos,
			ap.ID,
		)

		if err := uc.mail.Send("Agendamento Confirmado!", []string{in.Email}, body); err != nil {
			uc.log.Warn("confirmation email failed",
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

// displayDate converte AAAA-MM-DD para o formato exibido nos e-mails.
func displayDate(data string) string {
	t, err := time.Parse(domain.DateLayout, data)
	if err != nil {
		return data
	}
	return t.Format("02-01-2006")
}
