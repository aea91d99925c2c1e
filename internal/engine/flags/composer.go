// Package flags composes the Emscripten flag set for a build.
package flags

import (
	"strings"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// imguiBundle enables the WebGL2 and GLFW/SDL input emulation that
// ImGui-based UIs need. It is applied before user flags so any individual
// setting can still be overridden.
var imguiBundle = []string{
	"-sUSE_GLFW=3",
	"-sUSE_WEBGL2=1",
	"-sFULL_ES3=1",
	"-sGL_ENABLE_GET_PROC_ADDRESS=1",
	"-sALLOW_MEMORY_GROWTH=1",
	"-sUSE_SDL=2",
	"-sEXPORT_NAME=Module",
	"-sINITIAL_MEMORY=67108864",
}

// exportedRuntimeMethods keeps the JS interop surface usable from ES6
// module consumers.
const exportedRuntimeMethods = "-sEXPORTED_RUNTIME_METHODS=FS,callMain,setValue,getValue,UTF8ToString,stringToUTF8"

// Compose builds the ordered flag set for the configuration. It is a pure
// function: identical inputs yield identical flag sets. Composition order
// is fixed (base, mode, target, ImGui bundle, user flags) and later flags
// override earlier ones in the toolchain, which is what gives user flags
// final say.
//
// The only error case is a missing internal template, which indicates a
// programming error rather than a runtime condition.
func Compose(cfg domain.BuildConfiguration, _ domain.Strategy) (domain.FlagSet, error) {
	fs := make(domain.FlagSet, 0, 24)

	base, err := baseFlags(cfg)
	if err != nil {
		return nil, err
	}
	fs = append(fs, base...)
	fs = append(fs, modeFlags(cfg.Mode)...)

	target, err := targetFlags(cfg.Target)
	if err != nil {
		return nil, err
	}
	fs = append(fs, target...)

	if cfg.WithImGui {
		fs = append(fs, imguiBundle...)
		if cfg.Mode == domain.ModeDebug {
			fs = append(fs, "-sGL_ASSERTIONS=1")
		}
	}

	// User flags last, verbatim and without deduplication. An empty or
	// all-whitespace raw string contributes nothing.
	fs = append(fs, strings.Fields(cfg.RawFlags)...)

	return fs, nil
}

func baseFlags(cfg domain.BuildConfiguration) ([]string, error) {
	switch cfg.Target {
	case domain.TargetWeb, domain.TargetNode:
		return []string{
			"-o", cfg.ArtifactJS(),
			"-sMODULARIZE=1",
			"-sEXPORT_ES6=1",
			exportedRuntimeMethods,
			"-fwasm-exceptions",
		}, nil
	case domain.TargetWASI:
		return []string{
			"-o", cfg.ArtifactWasm(),
			"-fwasm-exceptions",
		}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, ""), "target", string(cfg.Target))
	}
}

func modeFlags(mode domain.BuildMode) []string {
	if mode == domain.ModeDebug {
		return []string{"-g3", "-gsource-map", "-O0", "-sASSERTIONS=2", "-sSAFE_HEAP=1"}
	}
	return []string{"-O3", "-flto", "-sASSERTIONS=0"}
}

func targetFlags(target domain.TargetEnv) ([]string, error) {
	switch target {
	case domain.TargetWeb:
		return []string{"-sENVIRONMENT=web"}, nil
	case domain.TargetNode:
		return []string{"-sENVIRONMENT=node"}, nil
	case domain.TargetWASI:
		return []string{"-sSTANDALONE_WASM=1", "-sPURE_WASI=1"}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, ""), "target", string(target))
	}
}
