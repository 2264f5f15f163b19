package ledger

import (
	"testing"

	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(barbeiro, cliente, servico, valor string) models.PerformedService {
	return models.PerformedService{
		Barbeiro:    barbeiro,
		NomeCliente: cliente,
		Servico:     servico,
		Valor:       decimal.RequireFromString(valor),
	}
}

func TestGeneralReport(t *testing.T) {
	rows := []models.PerformedService{
		row("A", "João", "Corte R$ 10,00", "10.00"),
		row("A", "Pedro", "Barba R$ 5,00", "5.00"),
		row("B", "Lucas", "Pezinho R$ 3,00", "3.00"),
	}

	report := GeneralReport(rows)

	require.Len(t, report, 2)

	require.Contains(t, report, "A")
	assert.Equal(t, 2, report["A"].TotalServicos)
	assert.True(t, report["A"].TotalValor.Equal(decimal.RequireFromString("15.00")))
	require.Len(t, report["A"].ServicosPorCliente, 2)
	assert.Equal(t, "João", report["A"].ServicosPorCliente[0].NomeCliente)
	assert.Equal(t, "Pedro", report["A"].ServicosPorCliente[1].NomeCliente)

	require.Contains(t, report, "B")
	assert.Equal(t, 1, report["B"].TotalServicos)
	assert.True(t, report["B"].TotalValor.Equal(decimal.RequireFromString("3.00")))
}

func TestGeneralReportEmptyLedger(t *testing.T) {
	report := GeneralReport(nil)
	assert.Empty(t, report)
}

func TestGeneralReportCaseSensitiveGrouping(t *testing.T) {
	rows := []models.PerformedService{
		row("carlos", "João", "Corte R$ 10,00", "10.00"),
		row("Carlos", "Pedro", "Corte R$ 10,00", "10.00"),
	}

	report := GeneralReport(rows)

	require.Len(t, report, 2)
	assert.Equal(t, 1, report["carlos"].TotalServicos)
	assert.Equal(t, 1, report["Carlos"].TotalServicos)
}

func TestBarberReportFor(t *testing.T) {
	rows := []models.PerformedService{
		row("A", "João", "Corte R$ 10,00", "10.00"),
		row("A", "Pedro", "Barba R$ 5,50", "5.50"),
	}

	report, err := BarberReportFor("A", rows)
	require.NoError(t, err)

	assert.Equal(t, "A", report.Barbeiro)
	assert.Equal(t, 2, report.TotalServicos)
	assert.True(t, report.TotalValor.Equal(decimal.RequireFromString("15.50")))
	require.Len(t, report.ServicosPorCliente, 2)
	assert.Equal(t, "Corte R$ 10,00", report.ServicosPorCliente[0].Servico)
}

func TestBarberReportForUnknownBarber(t *testing.T) {
	report, err := BarberReportFor("C", nil)

	require.Error(t, err)
	assert.Nil(t, report)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindNotFound, be.Kind)
	assert.Equal(t, "barber_not_found", be.Code)
}
