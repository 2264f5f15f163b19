package ledger

import (
	"strings"
	"time"

	"github.com/HebertyRichards/API-web-barber/internal/httperr"
)

const DateLayout = "2006-01-02"

// RegisterInput é o pedido de registro de serviço realizado.
type RegisterInput struct {
	NomeCliente string
	Barbeiro    string
	Servicos    []string
	Data        string
}

func (in *RegisterInput) Validate() error {
	if in.NomeCliente == "" {
		return httperr.ErrValidation("missing_client_name", "O nome do cliente é obrigatório.")
	}
	if in.Barbeiro == "" {
		return httperr.ErrValidation("missing_barber", "O nome do barbeiro é obrigatório.")
	}
	if len(in.Servicos) == 0 {
		return httperr.ErrValidation("missing_service", "É necessário selecionar pelo menos um serviço.")
	}
	for _, s := range in.Servicos {
		if strings.TrimSpace(s) == "" {
			return httperr.ErrValidation("missing_service", "É necessário selecionar pelo menos um serviço.")
		}
	}
	if _, err := time.Parse(DateLayout, in.Data); err != nil {
		return httperr.ErrValidation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
	}
	return nil
}

// JoinServices produz a forma armazenada do campo servico do livro.
func JoinServices(servicos []string) string {
	return strings.Join(servicos, " + ")
}
