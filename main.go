package main

import (
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/jessevdk/go-flags"

	"github.com/cirocosta/dockerbuilder/command"
)

func main() {
	logger := lager.NewLogger("dockerbuilder")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))

	parser := flags.NewParser(&command.DockerBuilder, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		logger.Error("parsing", err)
		os.Exit(1)
	}
}
