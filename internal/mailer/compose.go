package mailer

import (
	"fmt"
	"strings"
)

const cancelURL = "https://web-barber-phi.vercel.app/cancelar-agendamento"

// Composição pura das mensagens: sem I/O, determinística, nunca falha.

func serviceItems(servicos []string) string {
	var b strings.Builder
	for _, s := range servicos {
		b.WriteString(fmt.Sprintf("<li>%s</li>", s))
	}
	return b.String()
}

// ConfirmationBody monta o e-mail de confirmação de agendamento.
// O código informado é o id do registro, usado no cancelamento.
func ConfirmationBody(nomeCliente, dataAgendamento, horario, barbeiro string, servicos []string, codigo uint) string {
	return fmt.Sprintf(`
        <h1>Agendamento Concluído</h1>
        <p>Olá %s, seu agendamento foi concluído no dia %s às %s com o barbeiro %s.</p>
        <p>Segue o(s) serviço(s) agendado(s):</p>
        <ul>
            %s
        </ul>
        <p>O código do seu agendamento é: <strong>%d</strong></p>
        <p>Para cancelar, acesse <a href="%s">Cancelar Agendamento</a> e insira o código.</p>
        <p>A barbearia Web Barber-Shop agradece a preferência. Venha ficar novo de novo!</p>
    `, nomeCliente, dataAgendamento, horario, barbeiro, serviceItems(servicos), codigo, cancelURL)
}

// CancellationBody monta o e-mail de cancelamento, listando os serviços
// que haviam sido combinados.
func CancellationBody(nomeCliente, dataAgendamento, horario, barbeiro string, servicos []string) string {
	return fmt.Sprintf(`
        <h1>Agendamento Cancelado</h1>
        <p>Olá %s, seu agendamento do dia %s às %s com o barbeiro %s foi cancelado.</p>
        <p>Serviço(s) que estava(m) agendado(s):</p>
        <ul>
            %s
        </ul>
        <p>Quando quiser, agende um novo horário. A barbearia Web Barber-Shop agradece a preferência!</p>
    `, nomeCliente, dataAgendamento, horario, barbeiro, serviceItems(servicos))
}
