// Package pipeline sequences the steps of a single environment run. Every
// step blocks until its external process exits; any failure halts the run
// right there, with no retries and nothing rolled back.
package pipeline

import (
	"os"
	"sort"

	"code.cloudfoundry.org/lager"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/cirocosta/dockerbuilder/compose"
	"github.com/cirocosta/dockerbuilder/config"
	"github.com/cirocosta/dockerbuilder/docker"
	"github.com/cirocosta/dockerbuilder/runner"
)

// Overrides are the command-line toggles that win over what the environment
// declares in the configuration.
//
type Overrides struct {
	NoCache   bool
	Push      bool
	BuildOnly bool
	Platform  []string
}

// Pipeline drives a single environment end to end.
//
type Pipeline struct {
	Runner     runner.Runner
	ComposeBin []string
}

// Run executes the fixed step sequence:
//
//	pre_build hooks → image build → compose up (unless build-only) →
//	push (if requested) → post_build hooks → interactive shell
//
func (p *Pipeline) Run(logger lager.Logger, env config.Environment, overrides Overrides) (err error) {
	err = env.Validate()
	if err != nil {
		return
	}

	hookEnv, err := hookEnvironment(env)
	if err != nil {
		return
	}

	err = p.runHooks(logger.Session("pre-build"), env.PreBuild, hookEnv)
	if err != nil {
		return
	}

	err = p.build(logger.Session("build"), env, overrides)
	if err != nil {
		return
	}

	if !env.BuildOnly && !overrides.BuildOnly {
		err = p.up(logger.Session("compose-up"), env)
		if err != nil {
			return
		}
	}

	if env.Push || overrides.Push {
		err = p.push(logger.Session("push"), env)
		if err != nil {
			return
		}
	}

	err = p.runHooks(logger.Session("post-build"), env.PostBuild, hookEnv)
	if err != nil {
		return
	}

	if env.Interactive {
		err = p.Runner.Argv(logger.Session("shell"),
			docker.ShellCommand(env.Container))
		if err != nil {
			return
		}
	}

	return
}

func (p *Pipeline) build(logger lager.Logger, env config.Environment, overrides Overrides) (err error) {
	argv, err := docker.BuildCommand(env, docker.BuildOverrides{
		NoCache:  overrides.NoCache,
		Push:     overrides.Push,
		Platform: overrides.Platform,
	})
	if err != nil {
		return
	}

	return p.Runner.Argv(logger, argv)
}

func (p *Pipeline) up(logger lager.Logger, env config.Environment) (err error) {
	argv, err := compose.UpCommand(env, p.ComposeBin)
	if err != nil {
		return
	}

	return p.Runner.Argv(logger, argv)
}

func (p *Pipeline) push(logger lager.Logger, env config.Environment) (err error) {
	cmds, err := docker.PushCommands(env)
	if err != nil {
		return
	}

	if cmds == nil {
		logger.Info("skipped", lager.Data{
			"reason": "push requires both `tag` and `registry`",
		})
		return
	}

	for _, argv := range cmds {
		err = p.Runner.Argv(logger, argv)
		if err != nil {
			return
		}
	}

	return
}

func (p *Pipeline) runHooks(logger lager.Logger, hooks []string, hookEnv []string) (err error) {
	for _, hook := range hooks {
		err = p.Runner.Shell(logger, hook, hookEnv)
		if err != nil {
			return
		}
	}

	return
}

// hookEnvironment loads the environment's env file (when it exists) so that
// pre/post hooks see the same variables compose injects into the stack.
//
func hookEnvironment(env config.Environment) (vars []string, err error) {
	envfile := env.EnvFilePath()

	_, statErr := os.Stat(envfile)
	if statErr != nil {
		return
	}

	values, err := godotenv.Read(envfile)
	if err != nil {
		err = errors.Wrapf(err,
			"failed to read env file %s", envfile)
		return
	}

	for key, value := range values {
		vars = append(vars, key+"="+value)
	}

	sort.Strings(vars)

	return
}
