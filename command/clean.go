package command

import (
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/cirocosta/dockerbuilder/docker"
	"github.com/cirocosta/dockerbuilder/runner"
)

type cleanCommand struct {
	Hard bool `long:"hard" description:"also remove all images, networks and unnamed volumes"`
}

func (c *cleanCommand) Execute(args []string) (err error) {
	logger := lager.NewLogger("dockerbuilder")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))

	local := runner.NewLocal()
	for _, argv := range docker.CleanCommands(c.Hard) {
		err = local.Argv(logger.Session("clean"), argv)
		if err != nil {
			return
		}
	}

	return
}
