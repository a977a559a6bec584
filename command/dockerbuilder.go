package command

// DockerBuilder aggregates every subcommand exposed by the CLI.
var DockerBuilder struct {
	Build       buildCommand       `command:"build" description:"builds the image of an environment and brings its compose stack up"`
	List        listCommand        `command:"list" alias:"ls" description:"lists the environments declared in the configuration"`
	Remove      removeCommand      `command:"remove" alias:"rm" description:"removes an environment from the configuration"`
	RemoveCache removeCacheCommand `command:"remove-cache" description:"removes the local image and build cache of an environment"`
	Clean       cleanCommand       `command:"clean" description:"prunes dangling containers and images"`
}

// configFlag is shared by every subcommand that reads the configuration.
type configFlag struct {
	Config string `long:"config" short:"c" default:"dockerbuilder.yml" description:"path to the configuration file"`
}
