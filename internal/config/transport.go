package config

const (
	defaultListenAddr   = ":8080"
	defaultAcceptorPort = 50051
	defaultSamplerParam = 1
)

type HTTPConfig struct {
	Addr string `yaml:"listen-addr"`
}

func (c *HTTPConfig) ListenAddr() string {
	if c.Addr == "" {
		return defaultListenAddr
	}
	return c.Addr
}

type GRPCConfig struct {
	Port    int    `yaml:"acceptor-port"`
	Address string `yaml:"acceptor-addr"`
}

// AcceptorPort is where the bot serves delivered reports.
func (c *GRPCConfig) AcceptorPort() int {
	if c.Port == 0 {
		return defaultAcceptorPort
	}
	return c.Port
}

// AcceptorAddr is what the reporter dials to deliver reports.
func (c *GRPCConfig) AcceptorAddr() string {
	return c.Address
}

type JaegerConfig struct {
	Agent string  `yaml:"agent-host-port"`
	Rate  float64 `yaml:"sampler-param"`
}

func (c *JaegerConfig) AgentHostPort() string {
	return c.Agent
}

// SamplerParam feeds a const sampler, so anything but 0 samples every trace.
func (c *JaegerConfig) SamplerParam() float64 {
	if c.Rate == 0 {
		return defaultSamplerParam
	}
	return c.Rate
}
