package task

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Classpath is an ordered list of class path entries. Repeated assignments
// append entries rather than replacing earlier ones.
type Classpath []string

// Append adds entries to the end of the classpath.
func (p *Classpath) Append(entries ...string) {
	*p = append(*p, entries...)
}

// String joins the entries with the platform path list separator, the form
// ejbc expects on its command line.
func (p Classpath) String() string {
	return strings.Join(p, string(os.PathListSeparator))
}

// UnmarshalYAML accepts either a sequence of entries or a single scalar in
// path list syntax, so task files can use whichever reads better.
func (p *Classpath) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var entries []string
		if err := value.Decode(&entries); err != nil {
			return err
		}
		p.Append(entries...)
		return nil
	default:
		var joined string
		if err := value.Decode(&joined); err != nil {
			return err
		}
		for _, entry := range strings.Split(joined, string(os.PathListSeparator)) {
			if entry != "" {
				p.Append(entry)
			}
		}
		return nil
	}
}

// systemClasspath returns the ambient CLASSPATH of the build environment,
// used when no classpath is configured.
func systemClasspath() Classpath {
	var p Classpath
	for _, entry := range strings.Split(os.Getenv("CLASSPATH"), string(os.PathListSeparator)) {
		if entry != "" {
			p.Append(entry)
		}
	}
	return p
}
