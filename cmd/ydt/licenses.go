package main

import (
	"fmt"

	"github.com/oukeidos/ydt/internal/licenses"
	"github.com/spf13/cobra"
)

func newLicensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "Show third-party license notices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEmbedded(cmd, licenses.NoticesText(), "THIRD_PARTY_NOTICES")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newDisclaimerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disclaimer",
		Short: "Show the full disclaimer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEmbedded(cmd, licenses.DisclaimerText(), "DISCLAIMER")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func printEmbedded(cmd *cobra.Command, text, name string) error {
	if text == "" {
		return fmt.Errorf("embedded %s is empty", name)
	}
	_, err := cmd.OutOrStdout().Write([]byte(text))
	return err
}
