package config

const defaultUpdatesTimeout = 60

type TelegramConfig struct {
	ApiToken       string `yaml:"token"`
	UpdatesTimeout int    `yaml:"updates-timeout-seconds"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) PollTimeout() int {
	if t.UpdatesTimeout <= 0 {
		return defaultUpdatesTimeout
	}
	return t.UpdatesTimeout
}
