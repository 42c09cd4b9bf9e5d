package ports

import "github.com/jhoicas/pipeday-api/internal/domain/entity"

// FunnelMetrics contadores del embudo. La implementación Prometheus vive en
// infrastructure/metrics; NopMetrics sirve para tests y CLI.
type FunnelMetrics interface {
	StageChanged(from, to entity.Stage)
	InvoiceGenerated()
	InvoiceGenerationFailed()
}

// NopMetrics no registra nada.
type NopMetrics struct{}

func (NopMetrics) StageChanged(_, _ entity.Stage) {}
func (NopMetrics) InvoiceGenerated()              {}
func (NopMetrics) InvoiceGenerationFailed()       {}
