package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

func TestLastAction(t *testing.T) {
	tests := []struct {
		name   string
		docket *domain.Docket
		want   string
	}{
		{
			name:   "nil docket",
			docket: nil,
			want:   domain.Placeholder,
		},
		{
			name:   "empty docket",
			docket: &domain.Docket{},
			want:   domain.Placeholder,
		},
		{
			name: "first entry wins",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{ActionText: "Auto admite demanda"},
				{ActionText: "Radicación del proceso"},
			}},
			want: "Auto admite demanda",
		},
		{
			name: "whitespace collapsed",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{ActionText: "  Fija   fecha\n de audiencia "},
			}},
			want: "Fija fecha de audiencia",
		},
		{
			name: "blank action text",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{ActionText: "   "},
			}},
			want: domain.Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastAction(tt.docket))
		})
	}
}

func TestAnnotations(t *testing.T) {
	tests := []struct {
		name   string
		docket *domain.Docket
		want   string
	}{
		{
			name:   "nil docket",
			docket: nil,
			want:   domain.Placeholder,
		},
		{
			name: "joins up to three entries",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{AnnotationText: "Primera anotación"},
				{AnnotationText: "Segunda anotación"},
				{AnnotationText: "Tercera anotación"},
				{AnnotationText: "Cuarta anotación"},
			}},
			want: "Primera anotación | Segunda anotación | Tercera anotación",
		},
		{
			name: "blank annotations skipped",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{AnnotationText: ""},
				{AnnotationText: "  "},
				{AnnotationText: "Única anotación"},
			}},
			want: "Única anotación",
		},
		{
			name: "all annotations blank",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{ActionText: "Auto", AnnotationText: ""},
			}},
			want: domain.Placeholder,
		},
		{
			name: "whitespace collapsed per annotation",
			docket: &domain.Docket{Entries: []domain.DocketEntry{
				{AnnotationText: "Se  corre\ntraslado"},
			}},
			want: "Se corre traslado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Annotations(tt.docket))
		})
	}
}
