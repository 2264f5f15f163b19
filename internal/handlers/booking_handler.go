package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	domain "github.com/HebertyRichards/API-web-barber/internal/domain/booking"
	"github.com/HebertyRichards/API-web-barber/internal/dto"
	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	ucbooking "github.com/HebertyRichards/API-web-barber/internal/usecase/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ======================================================
// USE CASE PORTS
// ======================================================

type appointmentCreator interface {
	Execute(ctx context.Context, in domain.CreateInput) (*ucbooking.CreateResult, error)
}

type appointmentCanceller interface {
	Execute(ctx context.Context, id uint) (*ucbooking.CancelResult, error)
}

type occupiedTimesLister interface {
	Execute(ctx context.Context, data, barbeiro string) ([]string, error)
}

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   appointmentCreator
	cancel   appointmentCanceller
	occupied occupiedTimesLister
	log      *zap.Logger
}

func NewBookingHandler(
	create appointmentCreator,
	cancel appointmentCanceller,
	occupied occupiedTimesLister,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		cancel:   cancel,
		occupied: occupied,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAgendamentoRequest struct {
	NomeCliente     string           `json:"nome_cliente"`
	Telefone        string           `json:"telefone"`
	Email           string           `json:"email"`
	DataAgendamento string           `json:"data_agendamento"`
	Horario         string           `json:"horario"`
	Servico         dto.ServiceField `json:"servico"`
	Barbeiro        string           `json:"barbeiro"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), domain.CreateInput{
		NomeCliente: req.NomeCliente,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Data:        req.DataAgendamento,
		Horario:     req.Horario,
		Servicos:    req.Servico,
		Barbeiro:    req.Barbeiro,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	id := res.Appointment.ID

	// A inserção já foi confirmada: falha de e-mail vira sucesso parcial,
	// nunca desfaz o agendamento.
	if res.EmailErr != nil {
		httperr.Internal(c, "email_failed", fmt.Sprintf(
			"Agendamento salvo com ID %d, mas ocorreu um erro ao enviar o e-mail de confirmação.",
			id,
		))
		return
	}

	message := "Agendamento criado com sucesso! Nenhum e-mail enviado porque o campo 'email' não foi preenchido."
	if res.EmailSent {
		message = "Agendamento criado e e-mail enviado com sucesso!"
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        message,
		"agendamento_id": id,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Código de agendamento inválido.")
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if res.EmailErr != nil {
		httperr.Internal(c, "email_failed", fmt.Sprintf(
			"Agendamento %d cancelado, mas ocorreu um erro ao enviar o e-mail de cancelamento.",
			res.Appointment.ID,
		))
		return
	}

	message := "Agendamento cancelado com sucesso."
	if res.EmailSent {
		message = "Agendamento cancelado e e-mail enviado com sucesso!"
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ======================================================
// HORARIOS INDISPONIVEIS
// ======================================================

func (h *BookingHandler) OccupiedTimes(c *gin.Context) {
	data := c.Query("data")
	barbeiro := c.Query("barbeiro")

	if data == "" || barbeiro == "" {
		httperr.BadRequest(c, "missing_query", "Os parâmetros 'data' e 'barbeiro' são obrigatórios.")
		return
	}
	if _, err := time.Parse(domain.DateLayout, data); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
		return
	}

	horarios, err := h.occupied.Execute(c.Request.Context(), data, barbeiro)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"horariosIndisponiveis": horarios})
}
