package docker

import (
	"github.com/cirocosta/dockerbuilder/config"
)

// PushCommands derives the tag-then-push pair targeting the environment's
// registry:
//
//	docker tag  <tag> <registry>/<tag>
//	docker push <registry>/<tag>
//
// When either `tag` or `registry` is absent the push step is skipped rather
// than failed: a nil slice (and nil error) is returned so the caller can
// warn and move on.
//
func PushCommands(env config.Environment) (cmds [][]string, err error) {
	if env.Tag == "" || env.Registry == "" {
		return
	}

	full := env.Registry + "/" + env.Tag

	err = validateReference(full)
	if err != nil {
		return
	}

	cmds = [][]string{
		{Binary, "tag", env.Tag, full},
		{Binary, "push", full},
	}

	return
}
