package docker

import (
	"os"
	"strings"

	"github.com/docker/distribution/reference"
	"github.com/pkg/errors"

	"github.com/cirocosta/dockerbuilder/config"
)

// Binary is the client binary that every argument vector produced by this
// package starts with.
const Binary = "docker"

// BuildOverrides carries the command-line toggles that take precedence over
// what the environment itself declares.
//
type BuildOverrides struct {
	NoCache  bool
	Push     bool
	Platform []string
}

// BuildCommand derives the `docker build` invocation for an environment:
//
//	docker build -f <dockerfile> [--no-cache]
//	  [--build-arg K=V]...
//	  [--platform a,b,c | --platform a --platform b]
//	  [-t <tag | registry/tag when pushing>]
//	  .
//
// The dockerfile must exist before any process is spawned.
//
func BuildCommand(env config.Environment, overrides BuildOverrides) (argv []string, err error) {
	dockerfile := env.DockerfilePath()
	if !fileExists(dockerfile) {
		err = errors.Wrapf(config.ErrMissingFile,
			"dockerfile %s", dockerfile)
		return
	}

	argv = []string{Binary, "build", "-f", dockerfile}

	if env.NoCache || overrides.NoCache {
		argv = append(argv, "--no-cache")
	}

	for _, arg := range env.BuildArgs {
		argv = append(argv, "--build-arg", arg)
	}

	platforms := env.Platforms()
	if len(overrides.Platform) != 0 {
		platforms = overrides.Platform
	}

	switch env.PlatformJoin {
	case config.PlatformJoinPerFlag:
		for _, platform := range platforms {
			argv = append(argv, "--platform", platform)
		}
	case "", config.PlatformJoinComma:
		if len(platforms) != 0 {
			argv = append(argv, "--platform", strings.Join(platforms, ","))
		}
	default:
		argv = nil
		err = errors.Errorf("unknown platform_join style %q", env.PlatformJoin)
		return
	}

	if env.Tag != "" {
		tag := FullTag(env, env.Push || overrides.Push)

		err = validateReference(tag)
		if err != nil {
			argv = nil
			return
		}

		argv = append(argv, "-t", tag)
	}

	argv = append(argv, ".")

	return
}

// FullTag is the image reference the build is tagged with: prefixed by the
// registry when the run is going to push there, plain otherwise.
//
func FullTag(env config.Environment, pushing bool) string {
	if pushing && env.Registry != "" {
		return env.Registry + "/" + env.Tag
	}

	return env.Tag
}

func validateReference(ref string) (err error) {
	_, err = reference.ParseNormalizedNamed(ref)
	if err != nil {
		err = errors.Wrapf(err,
			"invalid image reference %s", ref)
		return
	}

	return
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
