package config

import "time"

// Defaults applied before any other configuration source.
const (
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 5 * time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultTokenIssuer       = "go-diary-keeper"
	DefaultTokenDuration     = 24 * time.Hour
	DefaultPasswordCost      = 10
	DefaultGenerationBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGenerationModel   = "gemini-2.5-flash"
	DefaultGenerationTimeout = 60 * time.Second
	DefaultSearchBaseURL     = "https://www.googleapis.com/customsearch/v1"
	DefaultSearchTimeout     = 10 * time.Second
	DefaultSearchMaxResults  = 3
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			PasswordCost:  DefaultPasswordCost,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			Generation: Generation{
				BaseURL: DefaultGenerationBaseURL,
				Model:   DefaultGenerationModel,
				Timeout: DefaultGenerationTimeout,
			},
			Search: Search{
				BaseURL:    DefaultSearchBaseURL,
				Timeout:    DefaultSearchTimeout,
				MaxResults: DefaultSearchMaxResults,
			},
		},
		Report: Report{TimeZone: "UTC"},
	}
}
