package compose

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// ErrToolchainUnavailable indicates that the docker toolchain required for a
// run could not be found (or did not answer) before any build step ran.
var ErrToolchainUnavailable = errors.New("docker toolchain unavailable")

// Prober answers whether a candidate toolchain invocation responds
// successfully. It exists so that toolchain detection can be exercised
// without a docker installation.
//
type Prober interface {
	Probe(argv ...string) error
}

// ExecProber probes by actually running the candidate invocation, discarding
// its output.
type ExecProber struct{}

func (ExecProber) Probe(argv ...string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	return cmd.Run()
}

// Detect confirms that the docker daemon answers and then picks the compose
// flavor to use for the remainder of the run: the standalone
// `docker-compose` binary when available, the `docker compose` subcommand as
// a fallback.
//
func Detect(prober Prober) (bin []string, err error) {
	err = prober.Probe("docker", "--version")
	if err != nil {
		err = errors.Wrapf(ErrToolchainUnavailable,
			"docker is not installed or not running: %v", err)
		return
	}

	if prober.Probe("docker-compose", "--version") == nil {
		bin = []string{"docker-compose"}
		return
	}

	if prober.Probe("docker", "compose", "version") == nil {
		bin = []string{"docker", "compose"}
		return
	}

	err = errors.Wrap(ErrToolchainUnavailable,
		"neither docker-compose nor docker compose answered")

	return
}
