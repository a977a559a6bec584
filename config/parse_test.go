package config_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/cirocosta/dockerbuilder/config"
)

var _ = Describe("LoadFile and SaveFile", func() {

	var (
		dir      string
		filename string
	)

	BeforeEach(func() {
		var err error

		dir, err = os.MkdirTemp("", "dockerbuilder-config")
		Expect(err).ToNot(HaveOccurred())

		filename = filepath.Join(dir, "dockerbuilder.yml")
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Context("with a missing file", func() {
		It("fails", func() {
			_, err := config.LoadFile(filename)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("removing an environment and persisting", func() {

		BeforeEach(func() {
			content := []byte(`
environments:
  keep:
    tag: keep:latest
    composeargs:
      --profile: web
      --project-name: testing
  drop:
    tag: drop:latest
`)
			Expect(os.WriteFile(filename, content, 0644)).To(Succeed())
		})

		It("persists the deletion of exactly that key", func() {
			cfg, err := config.LoadFile(filename)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.Remove("drop")).To(Succeed())
			Expect(cfg.SaveFile(filename)).To(Succeed())

			reloaded, err := config.LoadFile(filename)
			Expect(err).ToNot(HaveOccurred())

			_, err = reloaded.Resolve("drop")
			Expect(errors.Is(err, config.ErrEnvironmentNotFound)).To(BeTrue())

			kept, err := reloaded.Resolve("keep")
			Expect(err).ToNot(HaveOccurred())
			Expect(kept.Tag).To(Equal("keep:latest"))
		})

		It("keeps composeargs ordering across the rewrite", func() {
			cfg, err := config.LoadFile(filename)
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.Remove("drop")).To(Succeed())
			Expect(cfg.SaveFile(filename)).To(Succeed())

			reloaded, err := config.LoadFile(filename)
			Expect(err).ToNot(HaveOccurred())

			kept, err := reloaded.Resolve("keep")
			Expect(err).ToNot(HaveOccurred())
			Expect(kept.ComposeArgs).To(Equal(config.ComposeArgs{
				{Flag: "--profile", Value: "web"},
				{Flag: "--project-name", Value: "testing"},
			}))
		})
	})
})
