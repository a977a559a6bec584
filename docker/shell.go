package docker

// ShellCommand derives the invocation that drops the user into an
// interactive shell inside a running container of the compose stack.
//
func ShellCommand(container string) []string {
	return []string{Binary, "exec", "-ti", container, "bash"}
}
