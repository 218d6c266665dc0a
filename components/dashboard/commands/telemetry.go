package commands

import (
	"context"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
)

// Telemetry is the recorder commands report to; dashboard.LogTelemetry
// satisfies it.
type Telemetry = dashboard.Telemetry

type discardTelemetry struct{}

func (discardTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return discardTelemetry{}
	}
	return t
}
