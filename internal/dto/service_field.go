package dto

import (
	"encoding/json"
	"errors"
)

// ServiceField aceita tanto `"Corte"` quanto `["Corte", "Barba"]` no JSON de
// entrada e normaliza os dois formatos para uma lista.
type ServiceField []string

func (s *ServiceField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = ServiceField{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("servico deve ser uma string ou uma lista de strings")
	}

	*s = ServiceField(many)
	return nil
}
