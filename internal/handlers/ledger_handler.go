package handlers

import (
	"context"
	"net/http"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/ledger"
	"github.com/HebertyRichards/API-web-barber/internal/dto"
	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/HebertyRichards/API-web-barber/internal/httpresp"
	"github.com/HebertyRichards/API-web-barber/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type serviceRegistrar interface {
	Execute(ctx context.Context, in domain.RegisterInput) (*models.PerformedService, error)
}

type generalReporter interface {
	Execute(ctx context.Context) (map[string]*domain.BarberReport, error)
}

type barberReporter interface {
	Execute(ctx context.Context, barbeiro string) (*domain.BarberReportNamed, error)
}

type LedgerHandler struct {
	register serviceRegistrar
	general  generalReporter
	byBarber barberReporter
	log      *zap.Logger
}

func NewLedgerHandler(
	register serviceRegistrar,
	general generalReporter,
	byBarber barberReporter,
	log *zap.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		register: register,
		general:  general,
		byBarber: byBarber,
		log:      log,
	}
}

type RegistrarServicoRequest struct {
	NomeCliente string           `json:"nome_cliente"`
	Barbeiro    string           `json:"barbeiro"`
	Servico     dto.ServiceField `json:"servico"`
	DataServico string           `json:"data_servico"`
}

func (h *LedgerHandler) Register(c *gin.Context) {
	var req RegistrarServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sv, err := h.register.Execute(c.Request.Context(), domain.RegisterInput{
		NomeCliente: req.NomeCliente,
		Barbeiro:    req.Barbeiro,
		Servicos:    req.Servico,
		Data:        req.DataServico,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":               "Serviço registrado com sucesso.",
		"id_servico_realizado":  sv.ID,
		"valor_total_calculado": sv.Valor,
	})
}

func (h *LedgerHandler) GeneralReport(c *gin.Context) {
	report, err := h.general.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, report)
}

func (h *LedgerHandler) BarberReport(c *gin.Context) {
	report, err := h.byBarber.Execute(c.Request.Context(), c.Param("nome"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, report)
}
