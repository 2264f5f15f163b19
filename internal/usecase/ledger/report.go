package ledger

import (
	"context"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/ledger"
)

// Os relatórios são recalculados do livro inteiro a cada chamada;
// não há cache nem manutenção incremental.

type GeneralReport struct {
	repo domain.Repository
}

func NewGeneralReport(repo domain.Repository) *GeneralReport {
	return &GeneralReport{repo: repo}
}

func (uc *GeneralReport) Execute(
	ctx context.Context,
) (map[string]*domain.BarberReport, error) {

	rows, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return domain.GeneralReport(rows), nil
}

type BarberReport struct {
	repo domain.Repository
}

func NewBarberReport(repo domain.Repository) *BarberReport {
	return &BarberReport{repo: repo}
}

func (uc *BarberReport) Execute(
	ctx context.Context,
	barbeiro string,
) (*domain.BarberReportNamed, error) {

	rows, err := uc.repo.ListByBarber(ctx, barbeiro)
	if err != nil {
		return nil, err
	}

	return domain.BarberReportFor(barbeiro, rows)
}
