package ledger

import (
	"context"

	"github.com/HebertyRichards/API-web-barber/internal/models"
)

type Repository interface {
	CreateService(
		ctx context.Context,
		sv *models.PerformedService,
	) error

	// ListAll retorna o livro inteiro na ordem de inserção.
	ListAll(
		ctx context.Context,
	) ([]models.PerformedService, error)

	ListByBarber(
		ctx context.Context,
		barbeiro string,
	) ([]models.PerformedService, error)
}
