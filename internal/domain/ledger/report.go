package ledger

import (
	"fmt"

	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"github.com/shopspring/decimal"
)

type ServiceDetail struct {
	NomeCliente string          `json:"nome_cliente"`
	Servico     string          `json:"servico"`
	Valor       decimal.Decimal `json:"valor"`
}

type BarberReport struct {
	TotalServicos      int             `json:"totalServicos"`
	TotalValor         decimal.Decimal `json:"totalValor"`
	ServicosPorCliente []ServiceDetail `json:"servicosPorCliente"`
}

type BarberReportNamed struct {
	Barbeiro           string          `json:"barbeiro"`
	TotalServicos      int             `json:"totalServicos"`
	TotalValor         decimal.Decimal `json:"totalValor"`
	ServicosPorCliente []ServiceDetail `json:"servicosPorCliente"`
}

// GeneralReport agrupa o livro inteiro por barbeiro, com nome exato
// (sensível a maiúsculas) e entradas na ordem das linhas recebidas.
func GeneralReport(rows []models.PerformedService) map[string]*BarberReport {
	report := make(map[string]*BarberReport)

	for _, row := range rows {
		br, ok := report[row.Barbeiro]
		if !ok {
			br = &BarberReport{
				TotalValor:         decimal.Zero,
				ServicosPorCliente: []ServiceDetail{},
			}
			report[row.Barbeiro] = br
		}

		br.TotalServicos++
		br.TotalValor = br.TotalValor.Add(row.Valor)
		br.ServicosPorCliente = append(br.ServicosPorCliente, ServiceDetail{
			NomeCliente: row.NomeCliente,
			Servico:     row.Servico,
			Valor:       row.Valor,
		})
	}

	return report
}

// BarberReportFor resume as linhas de um único barbeiro; zero linhas é
// tratado como barbeiro desconhecido.
func BarberReportFor(barbeiro string, rows []models.PerformedService) (*BarberReportNamed, error) {
	if len(rows) == 0 {
		return nil, httperr.ErrNotFound(
			"barber_not_found",
			fmt.Sprintf("Nenhum serviço encontrado para o barbeiro '%s'.", barbeiro),
		)
	}

	total := decimal.Zero
	detalhes := make([]ServiceDetail, 0, len(rows))
	for _, row := range rows {
		total = total.Add(row.Valor)
		detalhes = append(detalhes, ServiceDetail{
			NomeCliente: row.NomeCliente,
			Servico:     row.Servico,
			Valor:       row.Valor,
		})
	}

	return &BarberReportNamed{
		Barbeiro:           barbeiro,
		TotalServicos:      len(rows),
		TotalValor:         total,
		ServicosPorCliente: detalhes,
	}, nil
}
