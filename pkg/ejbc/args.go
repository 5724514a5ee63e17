package ejbc

import (
	"bufio"
	"context"
	"os/exec"
	"path/filepath"

	"github.com/master-g/iasejbc/pkg/descriptor"
)

// ejbcCommand is the name of the iAS stub compiler executable.
const ejbcCommand = "ejbc"

// ejbcPath returns the executable to run. With an iAS home directory set the
// utility is taken from its bin directory, otherwise it must be on the PATH.
func (c *Compiler) ejbcPath() string {
	if c.iasHomeDir != "" {
		return filepath.Join(c.iasHomeDir, "bin", ejbcCommand)
	}
	return ejbcCommand
}

// commandLine builds the ejbc argument list for a single bean.
func (c *Compiler) commandLine(ejb *descriptor.EjbInfo) []string {
	args := []string{"-classpath", c.classpath, "-basedir", c.destDir}

	if ejb.BeanType == descriptor.BeanTypeSession && ejb.SessionType == descriptor.SessionTypeStateless {
		args = append(args, "-sl")
	}
	if ejb.Failover {
		args = append(args, "-fo")
	}
	if ejb.Iiop {
		args = append(args, "-iiop")
	}
	if c.retainSource {
		args = append(args, "-gs")
	}
	if c.debugOutput {
		args = append(args, "-deb")
	}

	args = append(args,
		string(ejb.Home),
		string(ejb.Remote),
		string(ejb.Implementation),
	)

	return args
}

// run invokes ejbc for the bean, streaming its combined output through the
// logger. A start failure or non-zero exit is reported as an *Error.
func (c *Compiler) run(ctx context.Context, ejb *descriptor.EjbInfo) error {
	path := c.ejbcPath()
	args := c.commandLine(ejb)
	log := c.logger.WithField("ejb", ejb.Name)

	log.WithField("command", append([]string{path}, args...)).Debug("running ejbc")

	cmd := exec.CommandContext(ctx, path, args...)

	output, err := cmd.StdoutPipe()
	if err != nil {
		return &Error{Msg: "failed to open ejbc output pipe", Cause: err}
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return &Error{Msg: "failed to start " + path, Cause: err}
	}

	scanner := bufio.NewScanner(output)
	for scanner.Scan() {
		log.Info(scanner.Text())
	}

	if err := cmd.Wait(); err != nil {
		return &Error{Msg: "ejbc failed for bean " + ejb.Name, Cause: err}
	}

	return nil
}
