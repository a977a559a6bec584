package command

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/cirocosta/dockerbuilder/config"
	"github.com/cirocosta/dockerbuilder/docker"
	"github.com/cirocosta/dockerbuilder/runner"
)

type removeCommand struct {
	configFlag

	Args struct {
		Environment string `positional-arg-name:"environment" required:"true" description:"the environment to remove"`
	} `positional-args:"yes"`
}

func (c *removeCommand) Execute(args []string) (err error) {
	cfg, err := config.LoadFile(c.Config)
	if err != nil {
		return
	}

	err = cfg.Remove(c.Args.Environment)
	if err != nil {
		return
	}

	err = cfg.SaveFile(c.Config)
	if err != nil {
		return
	}

	fmt.Printf("Environment %s removed.\n", c.Args.Environment)

	return
}

type removeCacheCommand struct {
	configFlag

	Args struct {
		Environment string `positional-arg-name:"environment" required:"true" description:"the environment whose cache to remove"`
	} `positional-args:"yes"`
}

func (c *removeCacheCommand) Execute(args []string) (err error) {
	cfg, err := config.LoadFile(c.Config)
	if err != nil {
		return
	}

	env, err := cfg.Resolve(c.Args.Environment)
	if err != nil {
		return
	}

	logger := lager.NewLogger("dockerbuilder")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))

	local := runner.NewLocal()
	for _, argv := range docker.RemoveCacheCommands(env) {
		err = local.Argv(logger.Session("remove-cache"), argv)
		if err != nil {
			return
		}
	}

	return
}
