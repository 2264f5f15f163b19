package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/ledger"
	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRegistrar struct {
	gotInput domain.RegisterInput
	result   *models.PerformedService
	err      error
}

func (s *stubRegistrar) Execute(_ context.Context, in domain.RegisterInput) (*models.PerformedService, error) {
	s.gotInput = in
	return s.result, s.err
}

type stubGeneral struct {
	result map[string]*domain.BarberReport
	err    error
}

func (s *stubGeneral) Execute(_ context.Context) (map[string]*domain.BarberReport, error) {
	return s.result, s.err
}

type stubByBarber struct {
	result *domain.BarberReportNamed
	err    error
}

func (s *stubByBarber) Execute(_ context.Context, _ string) (*domain.BarberReportNamed, error) {
	return s.result, s.err
}

func newLedgerRouter(register serviceRegistrar, general generalReporter, byBarber barberReporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLedgerHandler(register, general, byBarber, zap.NewNop())
	r.POST("/servicos-realizados/", h.Register)
	r.GET("/servicos-realizados/relatorio/geral", h.GeneralReport)
	r.GET("/servicos-realizados/relatorio/barbeiro/:nome", h.BarberReport)
	return r
}

func TestLedgerRegister(t *testing.T) {
	register := &stubRegistrar{
		result: &models.PerformedService{
			ID:    5,
			Valor: decimal.RequireFromString("45.50"),
		},
	}
	r := newLedgerRouter(register, &stubGeneral{}, &stubByBarber{})

	w := doJSON(t, r, http.MethodPost, "/servicos-realizados/", `{
		"nome_cliente": "João",
		"barbeiro": "Carlos",
		"servico": ["Corte R$ 30,00", "Barba R$ 15,50"],
		"data_servico": "2026-09-10"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "id_servico_realizado")
	assert.Contains(t, resp, "valor_total_calculado")
	assert.Equal(t, []string{"Corte R$ 30,00", "Barba R$ 15,50"}, register.gotInput.Servicos)
}

func TestLedgerRegisterNoValue(t *testing.T) {
	register := &stubRegistrar{
		err: httperr.ErrValidation("no_service_value", "Nenhum valor de serviço válido encontrado no formato 'R$ XX,XX'."),
	}
	r := newLedgerRouter(register, &stubGeneral{}, &stubByBarber{})

	w := doJSON(t, r, http.MethodPost, "/servicos-realizados/", `{
		"nome_cliente": "João",
		"barbeiro": "Carlos",
		"servico": "Pacote",
		"data_servico": "2026-09-10"
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no_service_value")
}

func TestLedgerGeneralReport(t *testing.T) {
	general := &stubGeneral{
		result: map[string]*domain.BarberReport{
			"Carlos": {
				TotalServicos: 1,
				TotalValor:    decimal.RequireFromString("30.00"),
				ServicosPorCliente: []domain.ServiceDetail{
					{NomeCliente: "João", Servico: "Corte R$ 30,00", Valor: decimal.RequireFromString("30.00")},
				},
			},
		},
	}
	r := newLedgerRouter(&stubRegistrar{}, general, &stubByBarber{})

	w := doJSON(t, r, http.MethodGet, "/servicos-realizados/relatorio/geral", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Carlos"`)
	assert.Contains(t, w.Body.String(), `"totalServicos":1`)
	assert.Contains(t, w.Body.String(), `"servicosPorCliente"`)
}

func TestLedgerGeneralReportEmpty(t *testing.T) {
	general := &stubGeneral{result: map[string]*domain.BarberReport{}}
	r := newLedgerRouter(&stubRegistrar{}, general, &stubByBarber{})

	w := doJSON(t, r, http.MethodGet, "/servicos-realizados/relatorio/geral", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestLedgerBarberReportNotFound(t *testing.T) {
	byBarber := &stubByBarber{
		err: httperr.ErrNotFound("barber_not_found", "Nenhum serviço encontrado para o barbeiro 'C'."),
	}
	r := newLedgerRouter(&stubRegistrar{}, &stubGeneral{}, byBarber)

	w := doJSON(t, r, http.MethodGet, "/servicos-realizados/relatorio/barbeiro/C", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "barber_not_found")
}

func TestLedgerBarberReport(t *testing.T) {
	byBarber := &stubByBarber{
		result: &domain.BarberReportNamed{
			Barbeiro:           "Carlos",
			TotalServicos:      2,
			TotalValor:         decimal.RequireFromString("45.50"),
			ServicosPorCliente: []domain.ServiceDetail{},
		},
	}
	r := newLedgerRouter(&stubRegistrar{}, &stubGeneral{}, byBarber)

	w := doJSON(t, r, http.MethodGet, "/servicos-realizados/relatorio/barbeiro/Carlos", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"barbeiro":"Carlos"`)
	assert.Contains(t, w.Body.String(), `"totalServicos":2`)
}
