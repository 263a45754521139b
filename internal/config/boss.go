package config

// BossConfig is the YAML form of a phase table.
type BossConfig struct {
	ID     string     `yaml:"id"`
	Note   string     `yaml:"note"`
	Phases []PhaseDef `yaml:"phases"`
}

// PhaseDef fields are pointers so that a missing key can be told
// apart from an explicit zero.
type PhaseDef struct {
	Label        string   `yaml:"label"`
	Health       *float64 `yaml:"health"`
	Coeff        *float64 `yaml:"coeff"`
	PowerCoeff   *float64 `yaml:"power_coeff"`
	Participants *float64 `yaml:"participants"`
	Note         string   `yaml:"note"`
}
