// Package runner is the capability boundary around external process
// execution: structured argument vectors (docker, compose) go through Argv,
// opaque pre/post hook strings go through Shell. Nothing else in the
// codebase spawns processes.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
)

// Runner executes external commands on behalf of the pipeline.
//
type Runner interface {
	// Argv runs a structured argument vector (argv[0] being the binary),
	// blocking until the process exits.
	Argv(logger lager.Logger, argv []string) error

	// Shell hands an opaque command line to the platform shell, with
	// `extraEnv` (KEY=VALUE pairs) appended to the inherited environment.
	Shell(logger lager.Logger, command string, extraEnv []string) error
}

// Local runs commands on the local machine with inherited standard streams,
// so that docker's progress output and interactive sessions work untouched.
//
type Local struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// DryRun prints each command instead of executing it.
	DryRun bool
}

func NewLocal() *Local {
	return &Local{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (l *Local) Argv(logger lager.Logger, argv []string) (err error) {
	if len(argv) == 0 {
		err = errors.New("empty argument vector")
		return
	}

	logger.Debug("run", lager.Data{"command": strings.Join(argv, " ")})

	if l.DryRun {
		fmt.Fprintf(l.Stdout, "dry-run: %s\n", strings.Join(argv, " "))
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	err = cmd.Run()
	if err != nil {
		err = errors.Wrapf(err,
			"command failed: %s", strings.Join(argv, " "))
		return
	}

	return
}

func (l *Local) Shell(logger lager.Logger, command string, extraEnv []string) (err error) {
	logger.Debug("run-shell", lager.Data{"command": command})

	if l.DryRun {
		fmt.Fprintf(l.Stdout, "dry-run: %s\n", command)
		return
	}

	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	cmd.Env = append(os.Environ(), extraEnv...)

	err = cmd.Run()
	if err != nil {
		err = errors.Wrapf(err,
			"hook failed: %s", command)
		return
	}

	return
}
