package ledger

import (
	"regexp"
	"strings"

	"github.com/HebertyRichards/API-web-barber/internal/httperr"
	"github.com/shopspring/decimal"
)

// Os serviços chegam como texto livre ("Corte R$ 30,00") e o valor é
// extraído do próprio rótulo, no formato brasileiro com vírgula decimal.
var valorRegex = regexp.MustCompile(`R\$ ?(\d+,\d{2})`)

// ExtractTotal soma todos os valores embutidos na lista de serviços,
// antes da concatenação para armazenamento. Valores malformados são
// ignorados; se nenhum valor válido for encontrado o registro é rejeitado.
func ExtractTotal(servicos []string) (decimal.Decimal, error) {
	total := decimal.Zero
	found := false

	for _, s := range servicos {
		for _, m := range valorRegex.FindAllStringSubmatch(s, -1) {
			v, err := decimal.NewFromString(strings.Replace(m[1], ",", ".", 1))
			if err != nil {
				continue
			}
			total = total.Add(v)
			found = true
		}
	}

	if !found {
		return decimal.Zero, httperr.ErrValidation(
			"no_service_value",
			"Nenhum valor de serviço válido encontrado no formato 'R$ XX,XX'.",
		)
	}

	return total, nil
}
