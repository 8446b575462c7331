// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

package commands

import (
	"fmt"

	"github.com/luke396/lmo/internal/version"
	"github.com/spf13/cobra"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
	parent.AddCommand(cmd)
}
