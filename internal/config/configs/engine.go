package configs

// Engine tunes query windows and the heatmap scale.
type Engine struct {
	// DefaultDays is used when a request carries no usable days value.
	DefaultDays int `env:"DEFAULT_DAYS" envDefault:"30"`
	// MaxDays caps the days a request may ask for.
	MaxDays int `env:"MAX_DAYS" envDefault:"365"`
	// HeatmapScale and HeatmapCap give intensity = min(cap, conversions*scale).
	HeatmapScale float64 `env:"HEATMAP_SCALE" envDefault:"2"`
	HeatmapCap   float64 `env:"HEATMAP_CAP" envDefault:"100"`
}

// Normalize repairs out-of-range values.
func (c Engine) Normalize() Engine {
	if c.MaxDays <= 0 {
		c.MaxDays = 365
	}
	if c.DefaultDays <= 0 {
		c.DefaultDays = 30
	}
	if c.DefaultDays > c.MaxDays {
		c.DefaultDays = c.MaxDays
	}
	if c.HeatmapCap <= 0 || c.HeatmapCap > 100 {
		c.HeatmapCap = 100
	}
	if c.HeatmapScale < 0 {
		c.HeatmapScale = 0
	}
	return c
}
