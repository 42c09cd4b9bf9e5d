package funnel

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// Column una columna del tablero kanban.
type Column struct {
	Stage entity.Stage
	Label string
	Deals []*entity.Deal
	Count int
	Total decimal.Decimal
}

// Board agrupa los negocios por etapa, en el orden de entity.Stages.
// Negocios con etapa fuera del catálogo se ignoran.
func Board(deals []*entity.Deal) []Column {
	cols := make([]Column, len(entity.Stages))
	idx := make(map[entity.Stage]int, len(entity.Stages))
	for i, s := range entity.Stages {
		cols[i] = Column{Stage: s, Label: s.Label(), Deals: []*entity.Deal{}, Total: decimal.Zero}
		idx[s] = i
	}
	for _, d := range deals {
		i, ok := idx[d.Stage]
		if !ok {
			continue
		}
		cols[i].Deals = append(cols[i].Deals, d)
		cols[i].Count++
		cols[i].Total = cols[i].Total.Add(d.Value)
	}
	return cols
}
