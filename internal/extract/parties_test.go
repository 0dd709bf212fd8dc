package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

func TestParties(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		plaintiff string
		defendant string
	}{
		{
			name:      "both parties labelled",
			raw:       "Demandante: Juan Pérez | Demandado: María Gómez",
			plaintiff: "Juan Pérez",
			defendant: "María Gómez",
		},
		{
			name:      "empty input",
			raw:       "",
			plaintiff: domain.Placeholder,
			defendant: domain.Placeholder,
		},
		{
			name:      "plaintiff only",
			raw:       "Demandante: Carlos Ruiz",
			plaintiff: "Carlos Ruiz",
			defendant: domain.Placeholder,
		},
		{
			name:      "defendant only",
			raw:       "Demandado: Banco Popular S.A.",
			plaintiff: domain.Placeholder,
			defendant: "Banco Popular S.A.",
		},
		{
			name:      "internal whitespace collapsed",
			raw:       "Demandante: Juan   \n  Pérez | Demandado: María\tGómez",
			plaintiff: "Juan Pérez",
			defendant: "María Gómez",
		},
		{
			name:      "unlabelled segments ignored",
			raw:       "Apoderado: Pedro López | Demandante: Ana Díaz",
			plaintiff: "Ana Díaz",
			defendant: domain.Placeholder,
		},
		{
			name:      "no recognised labels",
			raw:       "Sujeto sin etiqueta",
			plaintiff: domain.Placeholder,
			defendant: domain.Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintiff, defendant := Parties(tt.raw)
			assert.Equal(t, tt.plaintiff, plaintiff)
			assert.Equal(t, tt.defendant, defendant)
		})
	}
}
