package configs

// Redis configures the optional webhook de-duplication backend. An
// empty Address disables it.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool { return c.Address != "" }
