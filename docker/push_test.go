package docker_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cirocosta/dockerbuilder/config"
	"github.com/cirocosta/dockerbuilder/docker"
)

var _ = Describe("PushCommands", func() {

	var (
		env  config.Environment
		cmds [][]string
		err  error
	)

	JustBeforeEach(func() {
		cmds, err = docker.PushCommands(env)
	})

	Context("with both tag and registry", func() {
		BeforeEach(func() {
			env = config.Environment{
				Tag:      "test:latest",
				Registry: "myregistry.com",
			}
		})

		It("produces the tag-then-push pair", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(cmds).To(Equal([][]string{
				{"docker", "tag", "test:latest", "myregistry.com/test:latest"},
				{"docker", "push", "myregistry.com/test:latest"},
			}))
		})
	})

	Context("without a registry", func() {
		BeforeEach(func() {
			env = config.Environment{Tag: "test:latest"}
		})

		It("skips the step entirely", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(cmds).To(BeNil())
		})
	})

	Context("without a tag", func() {
		BeforeEach(func() {
			env = config.Environment{Registry: "myregistry.com"}
		})

		It("skips the step entirely", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(cmds).To(BeNil())
		})
	})

	Context("with an invalid combined reference", func() {
		BeforeEach(func() {
			env = config.Environment{
				Tag:      "Test:latest",
				Registry: "myregistry.com",
			}
		})

		It("fails", func() {
			Expect(err).To(HaveOccurred())
			Expect(cmds).To(BeNil())
		})
	})
})

var _ = Describe("CleanCommands", func() {

	It("prunes dangling containers and images by default", func() {
		Expect(docker.CleanCommands(false)).To(Equal([][]string{
			{"docker", "container", "prune", "-f"},
			{"docker", "image", "prune", "-f"},
		}))
	})

	It("prunes everything when hard", func() {
		Expect(docker.CleanCommands(true)).To(Equal([][]string{
			{"docker", "system", "prune", "-a", "--volumes", "-f"},
		}))
	})
})

var _ = Describe("RemoveCacheCommands", func() {

	It("removes the tagged image and prunes the build cache", func() {
		env := config.Environment{Tag: "test:latest"}

		Expect(docker.RemoveCacheCommands(env)).To(Equal([][]string{
			{"docker", "rmi", "test:latest"},
			{"docker", "builder", "prune", "-f"},
		}))
	})

	It("only prunes the cache for untagged environments", func() {
		Expect(docker.RemoveCacheCommands(config.Environment{})).To(Equal([][]string{
			{"docker", "builder", "prune", "-f"},
		}))
	})
})

var _ = Describe("ShellCommand", func() {

	It("derives an interactive exec into the container", func() {
		Expect(docker.ShellCommand("test-container")).To(Equal([]string{
			"docker", "exec", "-ti", "test-container", "bash",
		}))
	})
})
