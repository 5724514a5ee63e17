package task

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the task attributes. Attribute names in task files follow the
// original Ant task: ejbdescriptor, iasdescriptor, dest, classpath, iashome,
// keepgenerated, debug.
type Config struct {
	// EjbDescriptor is the standard EJB 1.1 deployment descriptor, typically
	// named ejb-jar.xml. Required.
	EjbDescriptor string `yaml:"ejbdescriptor"`

	// IasDescriptor is the iAS-specific deployment descriptor, typically
	// named ias-ejb-jar.xml. Required.
	IasDescriptor string `yaml:"iasdescriptor"`

	// Dest is the directory holding the compiled bean classes; generated
	// stubs and skeletons are written below it. Required.
	Dest string `yaml:"dest"`

	// Classpath used when compiling stubs and skeletons. Defaults to the
	// CLASSPATH of the build environment.
	Classpath Classpath `yaml:"classpath"`

	// IasHome is the iAS installation directory, used to locate the ejbc
	// utility when it is not on the PATH. Optional.
	IasHome string `yaml:"iashome"`

	// KeepGenerated retains the Java source files ejbc generates instead of
	// deleting them after compilation.
	KeepGenerated bool `yaml:"keepgenerated"`

	// Debug makes ejbc log additional debugging output.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the task defaults: no paths, no flags, ambient
// classpath.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads a YAML task file.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("error reading task file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("error parsing task file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the configuration eagerly, before any parsing or
// generation work starts. Each failure names the offending attribute and its
// value.
func (c *Config) Validate() error {
	if c.EjbDescriptor == "" {
		return errorf("the standard EJB descriptor must be specified using the %q attribute", "ejbdescriptor")
	}
	if !isFile(c.EjbDescriptor) {
		return errorf("the standard EJB descriptor (%s) was not found or isn't a file", c.EjbDescriptor)
	}

	if c.IasDescriptor == "" {
		return errorf("the iAS-specific XML descriptor must be specified using the %q attribute", "iasdescriptor")
	}
	if !isFile(c.IasDescriptor) {
		return errorf("the iAS-specific XML descriptor (%s) was not found or isn't a file", c.IasDescriptor)
	}

	if c.Dest == "" {
		return errorf("the destination directory must be specified using the %q attribute", "dest")
	}
	if !isDir(c.Dest) {
		return errorf("the destination directory (%s) was not found or isn't a directory", c.Dest)
	}

	if c.IasHome != "" && !isDir(c.IasHome) {
		return errorf("if %q is specified, it must be a valid directory (it was set to %s)", "iashome", c.IasHome)
	}

	return nil
}

// resolveClasspath returns the configured classpath, or the ambient
// CLASSPATH when none was given.
func (c *Config) resolveClasspath() Classpath {
	if len(c.Classpath) == 0 {
		return systemClasspath()
	}
	return c.Classpath
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
