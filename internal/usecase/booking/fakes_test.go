package booking

import (
	"context"
	"errors"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/booking"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"gorm.io/gorm"
)

// fakeRepo guarda agendamentos em memória, ids sequenciais.
type fakeRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
	createErr    error
	deleteErr    error
	listErr      error
	deleted      []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.appointments, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) ListOccupiedTimes(_ context.Context, data, barbeiro string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []string
	for _, ap := range f.appointments {
		if ap.DataAgendamento == data && ap.Barbeiro == barbeiro {
			out = append(out, ap.Horario)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeSender registra os envios e pode ser forçado a falhar.
type fakeSender struct {
	sendErr  error
	subjects []string
	to       [][]string
	bodies   []string
}

func (f *fakeSender) Send(subject string, recipients []string, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.subjects = append(f.subjects, subject)
	f.to = append(f.to, recipients)
	f.bodies = append(f.bodies, htmlBody)
	return nil
}

var errSMTPDown = errors.New("smtp: connection refused")
