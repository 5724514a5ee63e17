package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/master-g/iasejbc/pkg/task"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iasejbc",
	Short: "Compiles EJB 1.1 stubs and skeletons for the iPlanet Application Server",
	Long: `iasejbc reads the standard EJB 1.1 deployment descriptor (ejb-jar.xml)
and the iAS-specific descriptor (ias-ejb-jar.xml), locates the compiled bean
classes below the destination directory and runs the ejbc utility for every
bean whose stubs and skeletons are missing or out of date.`,
	Run: func(cmd *cobra.Command, args []string) {
		logr := newLogger()

		config, err := buildConfig(cmd)
		if err != nil {
			logr.Fatal(err)
		}

		if err := task.New(config, logr).Execute(cmd.Context()); err != nil {
			logr.Fatal(err)
		}
	},
}

var (
	taskFile      string
	ejbDescriptor string
	iasDescriptor string
	destDir       string
	classpath     []string
	iasHome       string
	keepGenerated bool
	debug         bool
	logFormat     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&taskFile, "task-file", "f", "", "YAML task file with the task attributes")
	rootCmd.PersistentFlags().StringVar(&ejbDescriptor, "ejb-descriptor", "", "standard EJB 1.1 XML descriptor (ejb-jar.xml)")
	rootCmd.PersistentFlags().StringVar(&iasDescriptor, "ias-descriptor", "", "iAS-specific XML descriptor (ias-ejb-jar.xml)")
	rootCmd.PersistentFlags().StringVar(&destDir, "dest", "", "directory holding the compiled bean classes")
	rootCmd.PersistentFlags().StringArrayVar(&classpath, "classpath", nil, "classpath entry for ejbc, may be repeated")
	rootCmd.PersistentFlags().StringVar(&iasHome, "ias-home", "", "iAS installation directory, used to locate ejbc")
	rootCmd.PersistentFlags().BoolVar(&keepGenerated, "keep-generated", false, "retain the Java source files ejbc generates")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log additional ejbc debugging output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format, 'text' or 'json'")
}

// buildConfig assembles the task configuration from the task file, with
// command line flags taking precedence. Repeated --classpath flags append to
// the task file classpath.
func buildConfig(cmd *cobra.Command) (task.Config, error) {
	config := task.DefaultConfig()

	if taskFile != "" {
		loaded, err := task.LoadConfig(taskFile)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ejb-descriptor") {
		config.EjbDescriptor = ejbDescriptor
	}
	if flags.Changed("ias-descriptor") {
		config.IasDescriptor = iasDescriptor
	}
	if flags.Changed("dest") {
		config.Dest = destDir
	}
	if flags.Changed("ias-home") {
		config.IasHome = iasHome
	}
	if flags.Changed("keep-generated") {
		config.KeepGenerated = keepGenerated
	}
	if flags.Changed("debug") {
		config.Debug = debug
	}
	config.Classpath.Append(classpath...)

	return config, nil
}

func newLogger() *logrus.Logger {
	logr := logrus.New()
	if logFormat == "json" {
		logr.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logr.SetFormatter(&logrus.TextFormatter{})
	}
	if debug {
		logr.SetLevel(logrus.DebugLevel)
	}
	return logr
}
