package docker

import (
	"github.com/cirocosta/dockerbuilder/config"
)

// CleanCommands derives the pruning invocations: dangling containers and
// images by default, everything (images, networks and unnamed volumes
// included) when `hard` is set.
//
func CleanCommands(hard bool) [][]string {
	if hard {
		return [][]string{
			{Binary, "system", "prune", "-a", "--volumes", "-f"},
		}
	}

	return [][]string{
		{Binary, "container", "prune", "-f"},
		{Binary, "image", "prune", "-f"},
	}
}

// RemoveCacheCommands derives the invocations that drop an environment's
// local image (when it has one) and the build cache behind it.
//
func RemoveCacheCommands(env config.Environment) (cmds [][]string) {
	if env.Tag != "" {
		cmds = append(cmds, []string{Binary, "rmi", env.Tag})
	}

	cmds = append(cmds, []string{Binary, "builder", "prune", "-f"})

	return
}
