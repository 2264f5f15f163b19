package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformedService é um lançamento do livro de serviços realizados.
// Valor é sempre derivado do texto dos serviços, nunca informado pelo cliente.
type PerformedService struct {
	ID uint `gorm:"column:id_servico_realizado;primaryKey" json:"id_servico_realizado"`

	NomeCliente string `gorm:"size:255;not null" json:"nome_cliente"`
	Barbeiro    string `gorm:"size:255;not null;index" json:"barbeiro"`

	Servico string          `gorm:"size:255;not null" json:"servico"`
	Valor   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`

	DataServico  string    `gorm:"size:10;not null" json:"data_servico"`
	RegistradoEm time.Time `gorm:"autoCreateTime" json:"registrado_em"`
}

func (PerformedService) TableName() string {
	return "servicos_realizados"
}
