package models

import "time"

// Appointment é um agendamento feito pelo cliente.
// O campo Servico guarda os serviços escolhidos separados por ", ".
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NomeCliente string `gorm:"size:255;not null" json:"nome_cliente"`
	Telefone    string `gorm:"size:20" json:"telefone"`
	Email       string `gorm:"size:255" json:"email"`

	DataAgendamento string `gorm:"size:10;not null;index:idx_agendamentos_dia_barbeiro" json:"data_agendamento"`
	Horario         string `gorm:"size:5;not null" json:"horario"`

	Servico  string `gorm:"size:255;not null" json:"servico"`
	Barbeiro string `gorm:"size:255;not null;index:idx_agendamentos_dia_barbeiro" json:"barbeiro"`

	CreatedAt time.Time `json:"created_at"`
}

func (Appointment) TableName() string {
	return "agendamentos"
}
