package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/emforge/internal/adapters/config"
	"go.trai.ch/emforge/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile a C++ project or source file to WebAssembly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.buildConfig(cmd)
			if err != nil {
				return err
			}

			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.app.Watch(cmd.Context(), cfg)
			}
			_, err = c.app.Run(cmd.Context(), cfg)
			return err
		},
	}

	cmd.Flags().StringP("project-path", "p", "", "Project directory or single C++ source file (required)")
	cmd.Flags().StringP("output-dir", "o", domain.DefaultOutputDir, "Directory receiving the compiled artifacts")
	cmd.Flags().StringP("build-config", "c", string(domain.ModeRelease), "Build configuration: Debug or Release")
	cmd.Flags().StringP("target-env", "t", string(domain.TargetWeb), "Target environment: web, node, or wasi")
	cmd.Flags().String("output-name", domain.DefaultOutputName, "Base name of the produced artifacts")
	cmd.Flags().Bool("with-imgui", false, "Add the ImGui WebGL/input emulation flag bundle")
	cmd.Flags().String("emcc-flags", "", "Extra emcc flags, appended last")
	cmd.Flags().String("emscripten-config", "", "Dotenv file applied to every toolchain process environment")
	cmd.Flags().Bool("watch", false, "Rebuild automatically when project files change")
	cmd.Flags().Bool("no-webapp", false, "Skip webapp shell generation for GUI builds")

	return cmd
}

// buildConfig merges CLI flags with the optional emforge.yaml defaults
// file. Explicitly passed flags win over the file; the file wins over
// built-in defaults.
func (c *CLI) buildConfig(cmd *cobra.Command) (domain.BuildConfiguration, error) {
	defaults, err := c.loadDefaults()
	if err != nil {
		return domain.BuildConfiguration{}, err
	}

	stringVal := func(name, fromFile string) string {
		val, _ := cmd.Flags().GetString(name)
		if !cmd.Flags().Changed(name) && fromFile != "" {
			return fromFile
		}
		return val
	}
	boolVal := func(name string, fromFile *bool) bool {
		val, _ := cmd.Flags().GetBool(name)
		if !cmd.Flags().Changed(name) && fromFile != nil {
			return *fromFile
		}
		return val
	}

	mode, err := domain.ParseBuildMode(stringVal("build-config", defaults.BuildConfig))
	if err != nil {
		return domain.BuildConfiguration{}, err
	}
	target, err := domain.ParseTargetEnv(stringVal("target-env", defaults.TargetEnv))
	if err != nil {
		return domain.BuildConfiguration{}, err
	}

	cfg := domain.BuildConfiguration{
		ProjectPath: stringVal("project-path", defaults.ProjectPath),
		OutputDir:   stringVal("output-dir", defaults.OutputDir),
		Mode:        mode,
		Target:      target,
		OutputName:  stringVal("output-name", defaults.OutputName),
		WithImGui:   boolVal("with-imgui", defaults.WithImGui),
		RawFlags:    stringVal("emcc-flags", defaults.EmccFlags),
		EnvFile:     stringVal("emscripten-config", defaults.EmscriptenConfig),
		Webapp:      !boolVal("no-webapp", invert(defaults.Webapp)),
	}
	return cfg, cfg.Validate()
}

func (c *CLI) loadDefaults() (config.Defaults, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Defaults{}, err
	}
	loaded, err := c.defaults.Load(cwd)
	if err != nil {
		return config.Defaults{}, err
	}
	if loaded == nil {
		return config.Defaults{}, nil
	}
	return *loaded, nil
}

// invert maps the file's "webapp: true/false" onto the --no-webapp flag.
func invert(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := !*b
	return &v
}
