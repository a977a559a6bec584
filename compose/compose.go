// Package compose detects which compose flavor is installed and derives the
// argument vectors that bring an environment's stack up.
package compose

import (
	"os"

	"github.com/pkg/errors"

	"github.com/cirocosta/dockerbuilder/config"
)

// UpCommand derives the compose invocation for an environment:
//
//	<bin> -f <composefile> [--env-file <envfile>]
//	  [<flag> [value]]...
//	  up [-d]
//
// `bin` is the flavor picked by Detect. The env file is only forwarded when
// it actually exists on disk, so that the `.env` default doesn't break
// environments that never created one. The compose file itself must exist.
//
func UpCommand(env config.Environment, bin []string) (argv []string, err error) {
	composefile := env.ComposeFilePath()
	if !fileExists(composefile) {
		err = errors.Wrapf(config.ErrMissingFile,
			"compose file %s", composefile)
		return
	}

	argv = append(argv, bin...)
	argv = append(argv, "-f", composefile)

	if envfile := env.EnvFilePath(); fileExists(envfile) {
		argv = append(argv, "--env-file", envfile)
	}

	for _, arg := range env.ComposeArgs {
		argv = append(argv, arg.Flag)
		if arg.Value != "" {
			argv = append(argv, arg.Value)
		}
	}

	argv = append(argv, "up")

	if env.Detached {
		argv = append(argv, "-d")
	}

	return
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
