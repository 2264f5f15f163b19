package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HebertyRichards/API-web-barber/internal/config"
	"github.com/HebertyRichards/API-web-barber/internal/handlers"
	infraRepo "github.com/HebertyRichards/API-web-barber/internal/infra/repository"
	"github.com/HebertyRichards/API-web-barber/internal/mailer"
	ucBooking "github.com/HebertyRichards/API-web-barber/internal/usecase/booking"
	ucLedger "github.com/HebertyRichards/API-web-barber/internal/usecase/ledger"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	ledgerRepo := infraRepo.NewLedgerGormRepository(db)

	mailSender := mailer.NewSMTPSender(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, mailSender, log)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(bookingRepo, mailSender, log)
	occupiedTimesUC := ucBooking.NewListOccupiedTimes(bookingRepo)

	registerServiceUC := ucLedger.NewRegisterService(ledgerRepo)
	generalReportUC := ucLedger.NewGeneralReport(ledgerRepo)
	barberReportUC := ucLedger.NewBarberReport(ledgerRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		occupiedTimesUC,
		log,
	)

	ledgerHandler := handlers.NewLedgerHandler(
		registerServiceUC,
		generalReportUC,
		barberReportUC,
		log,
	)

	// ======================================================
	// ROTAS
	// ======================================================
	agendamentos := r.Group("/agendamentos")
	{
		agendamentos.POST("/agendar", bookingHandler.Create)
		agendamentos.DELETE("/cancelar-agendamento/:id", bookingHandler.Cancel)
		agendamentos.GET("/horarios", bookingHandler.OccupiedTimes)
	}

	servicos := r.Group("/servicos-realizados")
	{
		servicos.POST("/", ledgerHandler.Register)
		servicos.GET("/relatorio/geral", ledgerHandler.GeneralReport)
		servicos.GET("/relatorio/barbeiro/:nome", ledgerHandler.BarberReport)
	}
}
