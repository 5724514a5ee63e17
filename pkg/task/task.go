package task

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/master-g/iasejbc/pkg/descriptor"
	"github.com/master-g/iasejbc/pkg/ejbc"
)

// compiler is the surface of *ejbc.Compiler the task drives. It exists so
// tests can observe the delegation without running the real utility.
type compiler interface {
	SetRetainSource(bool)
	SetDebugOutput(bool)
	SetIasHomeDir(string)
	SetLogger(logrus.FieldLogger)
	Execute(context.Context) error
}

// Task compiles EJB 1.1 stubs and skeletons for the iPlanet Application
// Server. It validates its configuration, constructs a descriptor parser and
// hands all real work to the ejbc compiler driver, translating every failure
// into a *Error. A Task performs one execution and is then discarded.
type Task struct {
	config Config
	logger logrus.FieldLogger

	newParser   func() (*descriptor.Parser, error)
	newCompiler func(ejbDescriptor, iasDescriptor, destDir, classpath string, parser *descriptor.Parser) compiler
}

// New returns a Task for the given configuration.
func New(config Config, logger logrus.FieldLogger) *Task {
	return &Task{
		config:    config,
		logger:    logger,
		newParser: descriptor.NewParser,
		newCompiler: func(ejbDescriptor, iasDescriptor, destDir, classpath string, parser *descriptor.Parser) compiler {
			return ejbc.New(ejbDescriptor, iasDescriptor, destDir, classpath, parser)
		},
	}
}

// AppendClasspath adds entries to the task classpath. Repeated calls append.
func (t *Task) AppendClasspath(entries ...string) {
	t.config.Classpath.Append(entries...)
}

// Validate checks the task configuration without executing anything.
func (t *Task) Validate() error {
	return t.config.Validate()
}

// Execute validates the configuration, builds the descriptor parser and runs
// the compiler. Any failure is returned as a *Error with the original cause
// preserved.
func (t *Task) Execute(ctx context.Context) error {
	if err := t.config.Validate(); err != nil {
		return err
	}

	parser, err := t.newParser()
	if err != nil {
		return newError("unable to create descriptor parser", err)
	}

	c := t.newCompiler(
		t.config.EjbDescriptor,
		t.config.IasDescriptor,
		t.config.Dest,
		t.config.resolveClasspath().String(),
		parser,
	)
	c.SetRetainSource(t.config.KeepGenerated)
	c.SetDebugOutput(t.config.Debug)
	if t.config.IasHome != "" {
		c.SetIasHomeDir(t.config.IasHome)
	}
	c.SetLogger(t.logger)

	return translate(c.Execute(ctx))
}

// translate maps the three compiler failure categories onto the task failure
// type, each with its own message prefix.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var ejbcErr *ejbc.Error
	if errors.As(err, &ejbcErr) {
		return newError("error running the ejbc utility", err)
	}

	var parseErr *descriptor.ParseError
	if errors.As(err, &parseErr) {
		return newError("error parsing the XML descriptor files", err)
	}

	return newError("i/o error while reading the XML descriptor files", err)
}
