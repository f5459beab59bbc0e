package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appconfig "max.ks1230/finances-tracker/internal/config"
)

func Test_OnMissingAgent_ShouldInstallNoopTracer(t *testing.T) {
	closer, err := Init("finances-test", &appconfig.JaegerConfig{})
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, &opentracing.NoopTracer{}, opentracing.GlobalTracer())
}
