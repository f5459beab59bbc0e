package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/logger"
)

type config interface {
	AgentHostPort() string
	SamplerParam() float64
}

// Init installs the global tracer of serviceName. Without an agent address
// tracing is disabled and spans go to a no-op tracer.
func Init(serviceName string, config config) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Disabled:    config.AgentHostPort() == "",
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: config.SamplerParam(),
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaegerzap.NewLogger(logger.L())))
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing initialized",
		zap.String("service", serviceName),
		zap.Bool("enabled", !cfg.Disabled),
	)
	return closer, nil
}
