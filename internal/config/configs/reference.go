package configs

// Reference points at the YAML file holding clients and campaigns for
// the memory store driver.
type Reference struct {
	File string `env:"FILE" envDefault:"reference.yaml"`
}
