package ports

// Environment resolves the extra process environment for toolchain
// invocations, typically from an Emscripten SDK config file.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Load returns KEY=VALUE entries to layer over the system environment.
	// An empty slice means the system environment is used as-is.
	Load(envFile string) ([]string, error)
}
