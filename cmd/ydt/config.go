package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oukeidos/ydt/internal/apperrors"
	"github.com/oukeidos/ydt/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	}
	cmd.SetUsageTemplate(envUsageTemplate)
	cmd.AddCommand(
		newConfigPathCmd(),
		newConfigShowCmd(),
		newConfigSetCmd(),
		newConfigInitCmd(),
	)
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return apperrors.Config(err.Error(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (file, env and defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite an existing file without asking")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runConfigShow(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return apperrors.Config(fmt.Sprintf("Invalid configuration: %v", err), err)
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	path, err := config.Path()
	if err != nil {
		return apperrors.Config(err.Error(), err)
	}
	cfg, err := config.LoadFileOrDefaults(path)
	if err != nil {
		return apperrors.Config(fmt.Sprintf("Invalid configuration: %v", err), err)
	}
	if err := cfg.Set(key, value); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	if err := config.Save(path, cfg); err != nil {
		return apperrors.Config(err.Error(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, path)
	return nil
}

func runConfigInit(cmd *cobra.Command, yes bool) error {
	path, err := config.Path()
	if err != nil {
		return apperrors.Config(err.Error(), err)
	}
	if _, err := os.Stat(path); err == nil {
		ok, err := newConfirmer().ConfirmOverwrite(path, yes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return apperrors.Config(err.Error(), err)
	}
	if err := config.Save(path, config.Defaults()); err != nil {
		return apperrors.Config(err.Error(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
