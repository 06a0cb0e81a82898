package main

import (
	"fmt"
	"strings"

	"github.com/oukeidos/ydt/internal/auth"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the Youdao app secret in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}

	cmd.SetUsageTemplate(envUsageTemplate)
	cmd.AddCommand(
		newEnvSetupCmd(),
		newEnvDeleteCmd(),
		newEnvStatusCmd(),
	)
	return cmd
}

func newEnvSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save the app secret to the keychain (prompt only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvSetup(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newEnvDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the app secret from the keychain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvDelete(cmd, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newEnvStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show credential status (default if no action given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runEnvSetup(cmd *cobra.Command) error {
	secret, err := promptForSecret("Youdao app secret: ")
	if err != nil {
		return fmt.Errorf("error reading app secret: %w", err)
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return fmt.Errorf("app secret is required for setup")
	}
	if err := saveSecret(secret); err != nil {
		return fmt.Errorf("error saving app secret: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved app secret to keychain.")
	return nil
}

func runEnvDelete(cmd *cobra.Command, yes bool) error {
	ok, err := newConfirmer().Confirm("Delete the Youdao app secret from the keychain?", yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}
	if err := deleteSecret(); err != nil {
		return fmt.Errorf("error deleting app secret: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted app secret from keychain.")
	return nil
}

func runEnvStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if cfg, err := loadConfig(); err != nil {
		fmt.Fprintln(out, "App key: Unknown (configuration could not be loaded)")
	} else if strings.TrimSpace(cfg.AppKey) != "" {
		fmt.Fprintln(out, "App key: Set")
	} else {
		fmt.Fprintln(out, "App key: Not Set (use `ydt config set app_key <key>` or YDT_APP_KEY)")
	}

	if getStatus() {
		fmt.Fprintf(out, "App secret: Found (source=%s)\n", auth.SourceKeychain)
		return nil
	}
	if secret, ok := getEnvSecret(); ok && secret != "" {
		fmt.Fprintf(out, "App secret: Found (source=%s; disabled by default, use --allow-env)\n", auth.SourceEnv)
		return nil
	}
	fmt.Fprintln(out, "App secret: Not Found (keychain empty, env not set)")
	return nil
}
