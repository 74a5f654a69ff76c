// Package telemetry assembles the tracer, base logger, and registered
// metric instruments behind the observability.Telemetry port.
package telemetry

import (
	"github.com/peemtanapat/retail-backoffice/internal/observability"
)

// Provider hands out the instruments registered at startup. Counter and
// Histogram return nil for names that were never registered; callers guard
// before recording.
type Provider struct {
	tracer      observability.TraceCtx
	logger      observability.Logger
	instruments instrumentSet
}

type instrumentSet struct {
	counters   map[string]observability.Counter
	histograms map[string]observability.Histogram
}

func New(
	tracer observability.TraceCtx,
	logger observability.Logger,
	counters map[string]observability.Counter,
	histograms map[string]observability.Histogram,
) *Provider {
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	if logger == nil {
		logger = observability.NopLogger()
	}
	set := instrumentSet{
		counters:   make(map[string]observability.Counter, len(counters)),
		histograms: make(map[string]observability.Histogram, len(histograms)),
	}
	for name, c := range counters {
		if c != nil {
			set.counters[name] = c
		}
	}
	for name, h := range histograms {
		if h != nil {
			set.histograms[name] = h
		}
	}

	return &Provider{tracer: tracer, logger: logger, instruments: set}
}

func (p *Provider) Tracer() observability.TraceCtx {
	return p.tracer
}

func (p *Provider) Logger() observability.Logger {
	return p.logger
}

func (p *Provider) Counter(name string) observability.Counter {
	if p == nil {
		return nil
	}
	return p.instruments.counters[name]
}

func (p *Provider) Histogram(name string) observability.Histogram {
	if p == nil {
		return nil
	}
	return p.instruments.histograms[name]
}
