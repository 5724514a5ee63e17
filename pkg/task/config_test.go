package task

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// validTestConfig lays out two descriptor files and a destination directory
// in a temp dir and returns a configuration pointing at them.
func validTestConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	ejbPath := filepath.Join(dir, "ejb-jar.xml")
	iasPath := filepath.Join(dir, "ias-ejb-jar.xml")
	dest := filepath.Join(dir, "classes")

	assert.NoError(t, os.WriteFile(ejbPath, []byte("<ejb-jar/>"), 0o644))
	assert.NoError(t, os.WriteFile(iasPath, []byte("<ias-ejb-jar/>"), 0o644))
	assert.NoError(t, os.Mkdir(dest, 0o755))

	config := DefaultConfig()
	config.EjbDescriptor = ejbPath
	config.IasDescriptor = iasPath
	config.Dest = dest

	return config
}

func TestValidateOk(t *testing.T) {
	config := validTestConfig(t)
	assert.NoError(t, config.Validate())
}

func TestValidateMissingEjbDescriptor(t *testing.T) {
	config := validTestConfig(t)
	config.EjbDescriptor = ""

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"ejbdescriptor"`)
}

func TestValidateMissingIasDescriptor(t *testing.T) {
	config := validTestConfig(t)
	config.IasDescriptor = ""

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"iasdescriptor"`)
}

func TestValidateMissingDest(t *testing.T) {
	config := validTestConfig(t)
	config.Dest = ""

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"dest"`)
}

func TestValidateEjbDescriptorNotFound(t *testing.T) {
	config := validTestConfig(t)
	config.EjbDescriptor = filepath.Join(config.Dest, "nope.xml")

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), config.EjbDescriptor)
}

func TestValidateEjbDescriptorIsDirectory(t *testing.T) {
	config := validTestConfig(t)
	config.EjbDescriptor = config.Dest

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "was not found or isn't a file")
}

func TestValidateIasDescriptorNotFound(t *testing.T) {
	config := validTestConfig(t)
	config.IasDescriptor = filepath.Join(config.Dest, "nope.xml")

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), config.IasDescriptor)
}

func TestValidateDestIsFile(t *testing.T) {
	config := validTestConfig(t)
	config.Dest = config.EjbDescriptor

	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "isn't a directory")
}

func TestValidateIasHome(t *testing.T) {
	config := validTestConfig(t)

	// Omitted iashome is not checked.
	assert.NoError(t, config.Validate())

	config.IasHome = config.EjbDescriptor
	err := config.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"iashome"`)
	assert.Contains(t, err.Error(), config.IasHome)

	config.IasHome = config.Dest
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ejbc.yaml")

	doc := `ejbdescriptor: ejb-jar.xml
iasdescriptor: ias-ejb-jar.xml
dest: build/classes
classpath:
  - build/classes
  - lib/ejb.jar
iashome: /opt/ias6/ias
keepgenerated: true
debug: true
`
	assert.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "ejb-jar.xml", config.EjbDescriptor)
	assert.Equal(t, "ias-ejb-jar.xml", config.IasDescriptor)
	assert.Equal(t, "build/classes", config.Dest)
	assert.Equal(t, Classpath{"build/classes", "lib/ejb.jar"}, config.Classpath)
	assert.Equal(t, "/opt/ias6/ias", config.IasHome)
	assert.True(t, config.KeepGenerated)
	assert.True(t, config.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ejbc.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("dest: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
