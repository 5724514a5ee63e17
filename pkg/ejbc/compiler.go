package ejbc

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/master-g/iasejbc/pkg/descriptor"
)

// Error reports a failure of the ejbc utility or of the checks that guard
// its invocation.
type Error struct {
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Compiler drives the iAS ejbc utility. It reads the two deployment
// descriptors, checks which beans have missing or stale stubs and skeletons,
// and runs ejbc for exactly those beans. Compiled bean classes and previously
// generated stubs are expected below the destination directory.
type Compiler struct {
	ejbDescriptor string
	iasDescriptor string
	destDir       string
	classpath     string
	parser        *descriptor.Parser

	retainSource bool
	debugOutput  bool
	iasHomeDir   string

	logger logrus.FieldLogger
}

// New returns a Compiler for the given descriptors, destination directory and
// classpath, using the supplied parser to read the descriptors.
func New(ejbDescriptor, iasDescriptor, destDir, classpath string, parser *descriptor.Parser) *Compiler {
	return &Compiler{
		ejbDescriptor: ejbDescriptor,
		iasDescriptor: iasDescriptor,
		destDir:       destDir,
		classpath:     classpath,
		parser:        parser,
		logger:        logrus.StandardLogger(),
	}
}

// SetRetainSource controls whether ejbc keeps the generated Java source
// files instead of deleting them after compilation.
func (c *Compiler) SetRetainSource(retain bool) { c.retainSource = retain }

// SetDebugOutput controls whether ejbc emits additional debugging output.
func (c *Compiler) SetDebugOutput(debug bool) { c.debugOutput = debug }

// SetIasHomeDir sets the iAS installation directory. When set, ejbc is run
// from its bin directory instead of being looked up on the PATH.
func (c *Compiler) SetIasHomeDir(dir string) { c.iasHomeDir = dir }

// SetLogger replaces the logger, which defaults to the logrus standard
// logger.
func (c *Compiler) SetLogger(logger logrus.FieldLogger) { c.logger = logger }

// Execute reads the descriptors and generates stubs and skeletons for every
// bean whose generated classes are missing or out of date. It returns an I/O
// error, a *descriptor.ParseError or an *Error.
func (c *Compiler) Execute(ctx context.Context) error {
	ejbs, err := c.parseDescriptors()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(ejbs))
	for name := range ejbs {
		names = append(names, name)
	}
	sort.Strings(names)

	c.logger.WithField("beans", len(names)).Info("checking enterprise beans")

	for _, name := range names {
		ejb := ejbs[name]
		log := c.logger.WithField("ejb", ejb.Name)

		if err := c.checkSourceClasses(ejb); err != nil {
			return err
		}

		stale, err := c.mustGenerate(ejb)
		if err != nil {
			return err
		}
		if !stale {
			log.Debug("stubs and skeletons are up to date")
			continue
		}

		log.Info("generating stubs and skeletons")

		if err := c.run(ctx, ejb); err != nil {
			return err
		}
	}

	return nil
}

// parseDescriptors reads the standard descriptor and overlays the
// iAS-specific one.
func (c *Compiler) parseDescriptors() (map[string]*descriptor.EjbInfo, error) {
	ejbFile, err := os.Open(c.ejbDescriptor)
	if err != nil {
		return nil, err
	}
	defer ejbFile.Close()

	ejbs, err := c.parser.ParseEjbJar(ejbFile, c.ejbDescriptor)
	if err != nil {
		return nil, err
	}

	iasFile, err := os.Open(c.iasDescriptor)
	if err != nil {
		return nil, err
	}
	defer iasFile.Close()

	if err := c.parser.ParseIasDescriptor(iasFile, c.iasDescriptor, ejbs); err != nil {
		return nil, err
	}

	return ejbs, nil
}

// checkSourceClasses verifies that the home, remote and implementation
// classes of the bean are compiled and present below the destination
// directory.
func (c *Compiler) checkSourceClasses(ejb *descriptor.EjbInfo) error {
	for _, class := range ejb.SourceClasses() {
		path := class.ClassFile(c.destDir)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return &Error{Msg: fmt.Sprintf("class %s for bean %q was not found in %s",
				class, ejb.Name, c.destDir)}
		}
	}
	return nil
}
