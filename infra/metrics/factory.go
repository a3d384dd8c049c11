package metrics

import (
	coremetrics "github.com/plantops/maintcore/core/metrics"
	"github.com/plantops/maintcore/infra/logger"
)

// NewSink builds the planning sink described by the configuration. Disabled
// backends are skipped, a single enabled backend is returned directly and
// several are fanned out through a MultiSink.
func NewSink(cfg coremetrics.Config, log logger.Logger) (coremetrics.PlanningSink, error) {
	if log == nil {
		log = logger.New("metrics")
	}
	cfg.SetDefaults()

	var sinks []coremetrics.PlanningSink
	if cfg.PrometheusEnabled {
		prom, err := NewPromSink(cfg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, prom)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
	}

	switch len(sinks) {
	case 0:
		log.Debugf("no metrics backend enabled, using nop sink")
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
