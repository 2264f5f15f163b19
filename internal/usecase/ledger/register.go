package ledger

import (
	"context"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/ledger"
	"github.com/HebertyRichards/API-web-barber/internal/models"
)

type RegisterService struct {
	repo domain.Repository
}

func NewRegisterService(repo domain.Repository) *RegisterService {
	return &RegisterService{repo: repo}
}

func (uc *RegisterService) Execute(
	ctx context.Context,
	in domain.RegisterInput,
) (*models.PerformedService, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	// O valor é extraído da lista antes da concatenação: um rótulo com
	// mais de um "R$ X,XX" contribui com todos eles.
	total, err := domain.ExtractTotal(in.Servicos)
	if err != nil {
		return nil, err
	}

	sv := &models.PerformedService{
		NomeCliente: in.NomeCliente,
		Barbeiro:    in.Barbeiro,
		Servico:     domain.JoinServices(in.Servicos),
		Valor:       total,
		DataServico: in.Data,
	}

	if err := uc.repo.CreateService(ctx, sv); err != nil {
		return nil, err
	}

	return sv, nil
}
