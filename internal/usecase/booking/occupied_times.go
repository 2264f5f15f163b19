package booking

import (
	"context"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/booking"
)

// ListOccupiedTimes devolve os horários já tomados para um par
// (data, barbeiro). Sem agendamentos o resultado é uma lista vazia,
// nunca um erro; calcular os horários livres fica a cargo do cliente.
type ListOccupiedTimes struct {
	repo domain.Repository
}

func NewListOccupiedTimes(repo domain.Repository) *ListOccupiedTimes {
	return &ListOccupiedTimes{repo: repo}
}

func (uc *ListOccupiedTimes) Execute(
	ctx context.Context,
	data string,
	barbeiro string,
) ([]string, error) {

	horarios, err := uc.repo.ListOccupiedTimes(ctx, data, barbeiro)
	if err != nil {
		return nil, err
	}

	if horarios == nil {
		horarios = []string{}
	}
	return horarios, nil
}
