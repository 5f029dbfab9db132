package internal

// Option is a functional option for assembling the cursorkit runtime.
type Option func(*application)

// application collects everything Run and RunMCP need before startup.
type application struct {
	config *Config
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}
