package manifest

// YAMLManifest is the on-disk shape of a stowage plan
type YAMLManifest struct {
	Ships      []YAMLShip      `yaml:"ships"`
	Cargo      []YAMLCargo     `yaml:"cargo"`
	Containers []YAMLContainer `yaml:"containers"`
	Stow       []YAMLStow      `yaml:"stow"`
	Hazards    []string        `yaml:"hazards"`
}

type YAMLShip struct {
	Name          string  `yaml:"name"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxContainers int     `yaml:"max_containers"`
	MaxWeight     float64 `yaml:"max_weight"`
	Dock          *bool   `yaml:"dock"`
}

type YAMLCargo struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"`
	Weight     int     `yaml:"weight"`
	Dangerous  bool    `yaml:"dangerous"`
	TempNeeded float64 `yaml:"temp_needed"`
}

type YAMLContainer struct {
	Ref         string  `yaml:"ref"`
	Type        string  `yaml:"type"`
	MaxCapacity float64 `yaml:"max_capacity"`
	Height      float64 `yaml:"height"`
	Tare        float64 `yaml:"tare"`
	Depth       float64 `yaml:"depth"`
	Pressure    float64 `yaml:"pressure"`
	Product     string  `yaml:"product"`
	Temperature float64 `yaml:"temperature"`
	Cargo       string  `yaml:"cargo"`
}

type YAMLStow struct {
	Ship       string   `yaml:"ship"`
	Containers []string `yaml:"containers"`
	Batch      bool     `yaml:"batch"`
}
