package command

import (
	"github.com/cirocosta/dockerbuilder/compose"
	"github.com/cirocosta/dockerbuilder/config"
	"github.com/cirocosta/dockerbuilder/pipeline"
	"github.com/cirocosta/dockerbuilder/runner"
)

type buildCommand struct {
	configFlag

	NoCache   bool     `long:"no-cache" description:"build the image without using the cache"`
	Push      bool     `long:"push" description:"push the image to the registry after building"`
	Platform  []string `long:"platform" description:"platform to build the image for (can be specified multiple times)"`
	Arch      []string `long:"arch" description:"alias for platform"`
	BuildOnly bool     `long:"buildonly" description:"only build the image, don't bring the compose stack up"`
	Verbose   bool     `long:"verbose" short:"v" description:"log the full command line of every invocation"`
	DryRun    bool     `long:"dry-run" description:"print the commands that would run without executing them"`

	Args struct {
		Environment string `positional-arg-name:"environment" required:"true" description:"the environment to build"`
	} `positional-args:"yes"`
}

func (c *buildCommand) Execute(args []string) (err error) {
	cfg, err := config.LoadFile(c.Config)
	if err != nil {
		return
	}

	env, err := cfg.Resolve(c.Args.Environment)
	if err != nil {
		return
	}

	logger, closeLog, err := newLogger(env.Logging, c.Verbose)
	if err != nil {
		return
	}
	defer closeLog()

	bin, err := compose.Detect(compose.ExecProber{})
	if err != nil {
		return
	}

	local := runner.NewLocal()
	local.DryRun = c.DryRun

	p := &pipeline.Pipeline{
		Runner:     local,
		ComposeBin: bin,
	}

	return p.Run(logger, env, pipeline.Overrides{
		NoCache:   c.NoCache,
		Push:      c.Push,
		BuildOnly: c.BuildOnly,
		Platform:  append(c.Platform, c.Arch...),
	})
}
