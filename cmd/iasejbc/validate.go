package main

import (
	"github.com/spf13/cobra"

	"github.com/master-g/iasejbc/pkg/task"
)

// validateCmd checks the task configuration without running ejbc.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the task configuration without generating anything",
	Run: func(cmd *cobra.Command, args []string) {
		logr := newLogger()

		config, err := buildConfig(cmd)
		if err != nil {
			logr.Fatal(err)
		}

		if err := task.New(config, logr).Validate(); err != nil {
			logr.Fatal(err)
		}

		logr.Info("task configuration is valid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
