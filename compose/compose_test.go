package compose_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cirocosta/dockerbuilder/compose"
	"github.com/cirocosta/dockerbuilder/config"
)

var _ = Describe("UpCommand", func() {

	var (
		dir         string
		composefile string

		env config.Environment
		bin []string

		argv []string
		err  error
	)

	BeforeEach(func() {
		var mkErr error

		dir, mkErr = os.MkdirTemp("", "dockerbuilder-compose")
		Expect(mkErr).ToNot(HaveOccurred())

		composefile = filepath.Join(dir, "docker-compose.yml")
		Expect(os.WriteFile(composefile, []byte("services: {}\n"), 0644)).To(Succeed())

		env = config.Environment{ComposeFile: composefile}
		bin = []string{"docker-compose"}
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	JustBeforeEach(func() {
		argv, err = compose.UpCommand(env, bin)
	})

	Context("with a compose file that does not exist", func() {
		BeforeEach(func() {
			env.ComposeFile = filepath.Join(dir, "nope.yml")
		})

		It("fails without producing a command", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrMissingFile)).To(BeTrue())
			Expect(argv).To(BeNil())
		})
	})

	Context("with the standalone binary", func() {
		It("derives a plain up invocation", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv).To(Equal([]string{
				"docker-compose", "-f", composefile, "up",
			}))
		})
	})

	Context("with the subcommand flavor", func() {
		BeforeEach(func() {
			bin = []string{"docker", "compose"}
		})

		It("keeps the two-word prefix", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv).To(Equal([]string{
				"docker", "compose", "-f", composefile, "up",
			}))
		})
	})

	Context("with an env file on disk", func() {
		BeforeEach(func() {
			envfile := filepath.Join(dir, ".env")
			Expect(os.WriteFile(envfile, []byte("FOO=bar\n"), 0644)).To(Succeed())

			env.EnvFile = envfile
		})

		It("forwards it", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv).To(ContainElements("--env-file", env.EnvFile))
		})
	})

	Context("with an env file that does not exist", func() {
		BeforeEach(func() {
			env.EnvFile = filepath.Join(dir, "absent.env")
		})

		It("omits the flag", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv).ToNot(ContainElement("--env-file"))
		})
	})

	Context("with composeargs", func() {
		BeforeEach(func() {
			env.ComposeArgs = config.ComposeArgs{
				{Flag: "--profile", Value: "web"},
				{Flag: "--project-name", Value: "testing"},
			}
		})

		It("forwards them in declaration order, before up", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv).To(Equal([]string{
				"docker-compose", "-f", composefile,
				"--profile", "web",
				"--project-name", "testing",
				"up",
			}))
		})
	})

	Context("with a value-less compose arg", func() {
		BeforeEach(func() {
			env.ComposeArgs = config.ComposeArgs{
				{Flag: "--quiet-pull"},
			}
		})

		It("forwards just the flag", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv).To(Equal([]string{
				"docker-compose", "-f", composefile, "--quiet-pull", "up",
			}))
		})
	})

	Context("detached", func() {
		BeforeEach(func() {
			env.Detached = true
		})

		It("appends -d after up", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(argv[len(argv)-2:]).To(Equal([]string{"up", "-d"}))
		})
	})
})
