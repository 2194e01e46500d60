package cli

import (
	"errors"
	"fmt"

	"github.com/vvka-141/includefolder/internal/checksum"
	"github.com/vvka-141/includefolder/internal/codegen"
	"github.com/vvka-141/includefolder/internal/config"
	"github.com/vvka-141/includefolder/internal/files/scanner"
	"github.com/vvka-141/includefolder/internal/logging"
	"github.com/vvka-141/includefolder/internal/services"
	"github.com/vvka-141/includefolder/pkg/includefolder"
)

// targetFlags are shared by generate and check.
type targetFlags struct {
	output     string
	pkg        string
	funcName   string
	tags       string
	configPath string
	envFiles   []string
}

func newGenerationService(verbose bool) (*services.GenerationService, includefolder.Logger) {
	logger := logging.NewConsoleLogger(verbose)
	svc := services.NewGenerationService(
		scanner.NewScanner(logger),
		codegen.NewGenerator(),
		checksum.New(),
		logger,
	)
	return svc, logger
}

// resolveRequests builds the generation requests for one invocation.
// Precedence per field: flag, config target, env file, $GOPACKAGE, output
// directory name.
func resolveRequests(args []string, f targetFlags) ([]includefolder.GenerationRequest, error) {
	defaults, err := config.LoadDefaults(f.envFiles...)
	if err != nil {
		return nil, err
	}

	var reqs []includefolder.GenerationRequest
	if len(args) == 2 {
		reqs = []includefolder.GenerationRequest{{
			Path:    args[0],
			Name:    args[1],
			Package: f.pkg,
			Func:    f.funcName,
			Tags:    f.tags,
			Output:  f.output,
		}}
	} else {
		cfg, err := loadProjectConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		if f.output != "" || f.funcName != "" {
			return nil, fmt.Errorf("--output and --func apply to a single target, not to a config file: %w", includefolder.ErrInvalidConfig)
		}
		reqs = cfg.Requests()
		for i := range reqs {
			if f.pkg != "" {
				reqs[i].Package = f.pkg
			}
			if f.tags != "" {
				reqs[i].Tags = f.tags
			}
		}
	}

	for i := range reqs {
		reqs[i] = defaults.Apply(reqs[i])
	}
	return reqs, nil
}

// loadProjectConfig loads an explicit config file, or includefolder.yaml from
// the working directory when path is empty.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%s: %w: %v", path, includefolder.ErrInvalidConfig, err)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("missing required arguments: <path> <name> (no %s in the working directory)", includefolder.ConfigFileName)
	}
	return cfg, err
}
