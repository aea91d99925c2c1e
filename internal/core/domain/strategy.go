package domain

// StrategyKind enumerates the three supported build strategies.
type StrategyKind int

const (
	// StrategyCMake drives a CMakeLists.txt project through emcmake + emmake.
	StrategyCMake StrategyKind = iota + 1
	// StrategyMakefile drives a Makefile project through emmake.
	StrategyMakefile
	// StrategySingleFile compiles one C++ source file directly with emcc.
	StrategySingleFile
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyCMake:
		return "cmake"
	case StrategyMakefile:
		return "makefile"
	case StrategySingleFile:
		return "single-file"
	default:
		return "unknown"
	}
}

// Strategy is the variant describing which native build system governs a
// project. It is derived once per build and never re-evaluated mid-build.
type Strategy struct {
	Kind StrategyKind
	// SourceFile is set only for StrategySingleFile.
	SourceFile string
}
