package rates

// Config contains exchange-rate provider settings.
type Config struct {
	APIKey  string `env:"EXCHANGE_RATES_API_KEY"`
	BaseURL string `env:"EXCHANGE_RATES_BASE_URL" envDefault:"https://api.apilayer.com/exchangerates_data"`
	Timeout int    `env:"EXCHANGE_RATES_TIMEOUT"  envDefault:"10"`
}
