package config

// Defaults represents the structure of the emforge.yaml defaults file.
// Every field mirrors a CLI flag; explicitly passed flags win over it.
type Defaults struct {
	Version          string `yaml:"version"`
	ProjectPath      string `yaml:"project"`
	OutputDir        string `yaml:"output"`
	BuildConfig      string `yaml:"mode"`
	TargetEnv        string `yaml:"target"`
	OutputName       string `yaml:"name"`
	WithImGui        *bool  `yaml:"imgui"`
	EmccFlags        string `yaml:"emcc_flags"`
	EmscriptenConfig string `yaml:"env_file"`
	Webapp           *bool  `yaml:"webapp"`
}
