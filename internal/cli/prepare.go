package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"detektw/internal/config"
	"detektw/internal/detekt"
	"detektw/internal/launcher"
	"detektw/internal/maven"
	"detektw/internal/resolver"
)

// invocation is everything a command needs to talk to detekt.
type invocation struct {
	BaseDir    string
	ConfigPath string
	Detekt     detekt.Invocation
	Command    []string
	// Sources maps each detekt property to where its value came from.
	Sources map[string]string
}

// prepare resolves the parameter set from flags, config file, project
// descriptor and environment.
func prepare(opts *Options, env Env) (*invocation, error) {
	defines, err := ParseDefines(opts.Defines)
	if err != nil {
		return nil, err
	}

	baseDir, err := filepath.Abs(opts.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve base directory: %w", err)
	}

	cfg, err := loadConfig(opts.File, baseDir)
	if err != nil {
		return nil, err
	}

	override := cfg.LocalRepository
	if v, ok := defines[maven.LocalRepoProperty]; ok {
		override = v
	}
	localRepo := maven.LocalRepository(override, env.Home, env.Environ)

	pomPath := cfg.Project.POM
	if !filepath.IsAbs(pomPath) {
		pomPath = filepath.Join(baseDir, pomPath)
	}
	project, err := maven.ReadProject(pomPath)
	if err != nil {
		return nil, err
	}

	host, ok := maven.ParseCoordinate(cfg.Project.Plugin)
	if !ok {
		return nil, fmt.Errorf("project.plugin must be groupId:artifactId, got %q", cfg.Project.Plugin)
	}

	var deps []maven.Dependency
	if plugin, ok := project.Plugin(host.String()); ok {
		deps = plugin.Dependencies
	} else {
		zap.L().Debug("plugin not declared in project", zap.Stringer("plugin", host), zap.String("pom", pomPath))
	}

	res, err := resolver.Resolve(resolver.Sources{
		Defines:         defines,
		Environ:         env.Environ,
		File:            cfg.Detekt,
		BaseDir:         baseDir,
		Home:            env.Home,
		LocalRepository: localRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid detekt parameters: %w", err)
	}
	for _, name := range res.Unknown {
		zap.L().Warn("ignoring unknown detekt parameter", zap.String("name", name))
	}

	inv := res.Invocation
	inv.Dependencies = deps

	return &invocation{
		BaseDir:    baseDir,
		ConfigPath: cfg.Path,
		Detekt:     inv,
		Command:    launcher.Command(cfg.Launcher, localRepo),
		Sources:    res.Sources,
	}, nil
}

func loadConfig(file, baseDir string) (*config.File, error) {
	if file == "" {
		return config.Load(baseDir)
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(baseDir, file)
	}
	cfg, err := config.LoadFrom(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", file)
		}
		return nil, err
	}
	return cfg, nil
}
