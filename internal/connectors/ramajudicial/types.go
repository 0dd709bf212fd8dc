package ramajudicial

import "github.com/litigio-labs/consulta-cli/internal/core/domain"

// searchResponse is the wire shape of the identifier-search endpoint.
// The server pages its results; only the first page is ever requested.
type searchResponse struct {
	Procesos []searchProceso `json:"procesos"`
}

// searchProceso is one search hit. Field names follow the upstream
// JSON exactly.
type searchProceso struct {
	IDProceso            int64  `json:"idProceso"`
	EsPrivado            bool   `json:"esPrivado"`
	Departamento         string `json:"departamento"`
	Despacho             string `json:"despacho"`
	FechaUltimaActuacion string `json:"fechaUltimaActuacion"`
	SujetosProcesales    string `json:"sujetosProcesales"`
}

func (p searchProceso) toDomain() domain.CaseSummary {
	return domain.CaseSummary{
		ProcessID:      p.IDProceso,
		Private:        p.EsPrivado,
		Department:     p.Departamento,
		Court:          p.Despacho,
		LastActionDate: p.FechaUltimaActuacion,
		PartiesRaw:     p.SujetosProcesales,
	}
}

// detailResponse is the wire shape of the process-detail endpoint.
type detailResponse struct {
	Despacho        string `json:"despacho"`
	TipoProceso     string `json:"tipoProceso"`
	ClaseProceso    string `json:"claseProceso"`
	SubclaseProceso string `json:"subclaseProceso"`
}

func (d detailResponse) toDomain() domain.CaseDetail {
	return domain.CaseDetail{
		Court:           d.Despacho,
		ProcessType:     d.TipoProceso,
		ProcessClass:    d.ClaseProceso,
		ProcessSubclass: d.SubclaseProceso,
	}
}

// docketResponse is the wire shape of the docket ("actuaciones")
// endpoint. Entries arrive most-recent-first.
type docketResponse struct {
	Actuaciones []docketActuacion `json:"actuaciones"`
}

type docketActuacion struct {
	Actuacion      string `json:"actuacion"`
	Anotacion      string `json:"anotacion"`
	FechaActuacion string `json:"fechaActuacion"`
}

func (d docketResponse) toDomain() domain.Docket {
	entries := make([]domain.DocketEntry, 0, len(d.Actuaciones))
	for _, a := range d.Actuaciones {
		entries = append(entries, domain.DocketEntry{
			ActionText:     a.Actuacion,
			AnnotationText: a.Anotacion,
			Date:           a.FechaActuacion,
		})
	}
	return domain.Docket{Entries: entries}
}
