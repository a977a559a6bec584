package config

import (
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied at the point of use whenever an environment leaves the
// corresponding field empty.
//
const (
	DefaultDockerfile  = "Dockerfile"
	DefaultComposeFile = "docker-compose.yml"
	DefaultEnvFile     = ".env"
	DefaultLogLevel    = "info"
	DefaultLogFile     = "dockerbuilder.log"
)

// Platform join styles accepted by `platform_join`.
//
const (
	PlatformJoinComma   = "comma"
	PlatformJoinPerFlag = "per-flag"
)

var (
	ErrEnvironmentNotFound = errors.New("environment not found")
	ErrMissingFile         = errors.New("file not found")
	ErrMissingVariable     = errors.New("missing required variable")
)

// Config represents the whole document held in `dockerbuilder.yml`: a
// mapping of environment names to their build definitions.
//
type Config struct {
	Environments map[string]Environment `yaml:"environments"`
}

// Environment describes a single named build target: which dockerfile to
// build, how to tag and push the resulting image, which compose stack to
// bring up afterwards, and the hooks that surround the whole run.
//
type Environment struct {
	Dockerfile  string `yaml:"dockerfile,omitempty"`
	ComposeFile string `yaml:"composefile,omitempty"`
	EnvFile     string `yaml:"envfile,omitempty"`

	BuildArgs        []string `yaml:"buildargs,omitempty"`
	RequireBuildArgs []string `yaml:"require_buildargs,omitempty"`

	Platform     []string `yaml:"platform,omitempty"`
	Arch         []string `yaml:"arch,omitempty"`
	PlatformJoin string   `yaml:"platform_join,omitempty"`

	Tag      string `yaml:"tag,omitempty"`
	Registry string `yaml:"registry,omitempty"`
	Push     bool   `yaml:"push,omitempty"`
	NoCache  bool   `yaml:"nocache,omitempty"`

	BuildOnly   bool   `yaml:"buildonly,omitempty"`
	Interactive bool   `yaml:"interactive,omitempty"`
	Container   string `yaml:"container,omitempty"`
	Detached    bool   `yaml:"detached,omitempty"`

	ComposeArgs ComposeArgs `yaml:"composeargs,omitempty"`

	PreBuild  []string `yaml:"pre_build,omitempty"`
	PostBuild []string `yaml:"post_build,omitempty"`

	Logging Logging `yaml:"logging,omitempty"`
}

// Logging configures the per-run logger: a severity threshold and the file
// that receives a copy of everything written to the terminal.
//
type Logging struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// ComposeArg is a single flag (and optional value) forwarded verbatim to the
// compose invocation.
//
type ComposeArg struct {
	Flag  string
	Value string
}

// ComposeArgs preserves the insertion order of the `composeargs` mapping,
// which plain Go maps (and yaml.v3's default map decoding) would lose.
//
type ComposeArgs []ComposeArg

func (c *ComposeArgs) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind != yaml.MappingNode {
		err = errors.Errorf("composeargs must be a mapping of flag to value (line %d)",
			node.Line)
		return
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		*c = append(*c, ComposeArg{
			Flag:  node.Content[i].Value,
			Value: node.Content[i+1].Value,
		})
	}

	return
}

func (c ComposeArgs) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, arg := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: arg.Flag},
			&yaml.Node{Kind: yaml.ScalarNode, Value: arg.Value},
		)
	}

	return node, nil
}

// Resolve performs an exact-match lookup of an environment by name.
//
func (c *Config) Resolve(name string) (env Environment, err error) {
	env, found := c.Environments[name]
	if !found {
		err = errors.Wrapf(ErrEnvironmentNotFound, "environment %s", name)
		return
	}

	return
}

// Remove deletes exactly the named environment, leaving every other key
// untouched. Removing a name twice fails the second time.
//
func (c *Config) Remove(name string) (err error) {
	_, found := c.Environments[name]
	if !found {
		err = errors.Wrapf(ErrEnvironmentNotFound, "environment %s", name)
		return
	}

	delete(c.Environments, name)

	return
}

// Names returns the environment names in lexical order.
//
func (c *Config) Names() (names []string) {
	for name := range c.Environments {
		names = append(names, name)
	}

	sort.Strings(names)

	return
}

func (e Environment) DockerfilePath() string {
	if e.Dockerfile == "" {
		return DefaultDockerfile
	}

	return e.Dockerfile
}

func (e Environment) ComposeFilePath() string {
	if e.ComposeFile == "" {
		return DefaultComposeFile
	}

	return e.ComposeFile
}

func (e Environment) EnvFilePath() string {
	if e.EnvFile == "" {
		return DefaultEnvFile
	}

	return e.EnvFile
}

// Platforms merges `platform` and `arch`, the latter being kept as a
// second spelling of the same concept.
//
func (e Environment) Platforms() (platforms []string) {
	platforms = append(platforms, e.Platform...)
	platforms = append(platforms, e.Arch...)

	return
}

// Validate performs the semantic checks that don't depend on the state of
// the filesystem: an interactive environment must name a container, and
// every key listed in `require_buildargs` must have a corresponding
// `KEY=VALUE` entry in `buildargs`.
//
func (e Environment) Validate() (err error) {
	if e.Interactive && e.Container == "" {
		err = errors.Wrap(ErrMissingVariable,
			"interactive environments must set `container`")
		return
	}

	switch e.PlatformJoin {
	case "", PlatformJoinComma, PlatformJoinPerFlag:
	default:
		err = errors.Errorf("unknown platform_join style %q", e.PlatformJoin)
		return
	}

	for _, required := range e.RequireBuildArgs {
		if !hasBuildArg(e.BuildArgs, required) {
			err = errors.Wrapf(ErrMissingVariable,
				"build-arg %s", required)
			return
		}
	}

	return
}

func (l Logging) LevelOrDefault() string {
	if l.Level == "" {
		return DefaultLogLevel
	}

	return l.Level
}

func (l Logging) FileOrDefault() string {
	if l.File == "" {
		return DefaultLogFile
	}

	return l.File
}

func hasBuildArg(args []string, key string) bool {
	for _, arg := range args {
		if len(arg) > len(key) && arg[:len(key)] == key && arg[len(key)] == '=' {
			return true
		}
	}

	return false
}
