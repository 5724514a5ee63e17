package ejbc

import (
	"os"
	"time"

	"github.com/master-g/iasejbc/pkg/descriptor"
)

// mustGenerate reports whether ejbc has to be run for the bean. A bean is
// stale when any of its generated classes is missing, or older than the
// newest of its three compiled classes and the two descriptors.
func (c *Compiler) mustGenerate(ejb *descriptor.EjbInfo) (bool, error) {
	newest, err := c.newestInput(ejb)
	if err != nil {
		return false, err
	}

	for _, class := range ejb.GeneratedClasses() {
		info, err := os.Stat(class.ClassFile(c.destDir))
		if os.IsNotExist(err) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if info.ModTime().Before(newest) {
			return true, nil
		}
	}

	return false, nil
}

// newestInput returns the most recent modification time among the bean's
// compiled classes and the two descriptor files.
func (c *Compiler) newestInput(ejb *descriptor.EjbInfo) (time.Time, error) {
	inputs := []string{c.ejbDescriptor, c.iasDescriptor}
	for _, class := range ejb.SourceClasses() {
		inputs = append(inputs, class.ClassFile(c.destDir))
	}

	var newest time.Time
	for _, path := range inputs {
		info, err := os.Stat(path)
		if err != nil {
			return time.Time{}, err
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}

	return newest, nil
}
