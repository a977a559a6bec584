package command

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/cirocosta/dockerbuilder/config"
)

type listCommand struct {
	configFlag
}

func (c *listCommand) Execute(args []string) (err error) {
	cfg, err := config.LoadFile(c.Config)
	if err != nil {
		return
	}

	bold := color.New(color.Bold).SprintFunc()

	fmt.Println(bold("Environments:"))
	for _, name := range cfg.Names() {
		fmt.Printf(" - %s\n", name)
	}

	return
}
