package booking

import (
	"strings"
	"time"

	"github.com/HebertyRichards/API-web-barber/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	maxNameLen    = 255
	maxPhoneLen   = 20
	maxEmailLen   = 255
	maxBarberLen  = 255
	maxServiceLen = 255
)

// CreateInput é o pedido de agendamento já normalizado pela borda HTTP.
type CreateInput struct {
	NomeCliente string
	Telefone    string
	Email       string
	Data        string
	Horario     string
	Servicos    []string
	Barbeiro    string
}

// Validate aplica todas as regras antes de qualquer acesso ao banco.
// A regra de contato exige ao menos um entre telefone e e-mail.
func (in *CreateInput) Validate() error {
	if in.NomeCliente == "" {
		return httperr.ErrValidation("missing_client_name", "O nome do cliente é obrigatório.")
	}
	if len(in.NomeCliente) > maxNameLen {
		return httperr.ErrValidation("client_name_too_long", "O nome do cliente é longo demais.")
	}

	if in.Telefone == "" && in.Email == "" {
		return httperr.ErrValidation("missing_contact", "Por favor, preencha o telefone ou o email.")
	}
	if len(in.Telefone) > maxPhoneLen {
		return httperr.ErrValidation("phone_too_long", "O telefone é longo demais.")
	}
	if len(in.Email) > maxEmailLen {
		return httperr.ErrValidation("email_too_long", "O email é longo demais.")
	}

	if _, err := time.Parse(DateLayout, in.Data); err != nil {
		return httperr.ErrValidation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
	}
	if _, err := time.Parse(TimeLayout, in.Horario); err != nil {
		return httperr.ErrValidation("invalid_time", "Horário inválido. Use o formato HH:MM.")
	}

	if err := ValidateServices(in.Servicos); err != nil {
		return err
	}

	if in.Barbeiro == "" {
		return httperr.ErrValidation("missing_barber", "O nome do barbeiro é obrigatório.")
	}
	if len(in.Barbeiro) > maxBarberLen {
		return httperr.ErrValidation("barber_too_long", "O nome do barbeiro é longo demais.")
	}

	return nil
}

// ValidateServices exige pelo menos um serviço não vazio.
func ValidateServices(servicos []string) error {
	if len(servicos) == 0 {
		return httperr.ErrValidation("missing_service", "É necessário selecionar pelo menos um serviço.")
	}
	for _, s := range servicos {
		if strings.TrimSpace(s) == "" {
			return httperr.ErrValidation("missing_service", "É necessário selecionar pelo menos um serviço.")
		}
	}
	if len(JoinServices(servicos)) > maxServiceLen {
		return httperr.ErrValidation("service_too_long", "A lista de serviços é longa demais.")
	}
	return nil
}

// JoinServices produz a forma armazenada do campo servico.
func JoinServices(servicos []string) string {
	return strings.Join(servicos, ", ")
}

// SplitServices desfaz JoinServices a partir do valor armazenado.
func SplitServices(stored string) []string {
	parts := strings.Split(stored, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
