package configs

// Kafka configures the metric event publisher. With no brokers events
// are dropped.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"adpulse.metric.updated"`
}

func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }
