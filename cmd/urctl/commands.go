package main

import (
	"github.com/spf13/cobra"
)

func newConnectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Проверить dashboard, подключиться к порту управления и отправить тестовую программу",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(opts)
			if err != nil {
				return err
			}
			defer c.Close()

			status, err := c.Connect()
			printAsJSON(cmd.OutOrStdout(), "ConnectionStatus", status)
			return err
		},
	}
}

func newSendCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "send [file]",
		Short: "Отправить сценарий из файла (по умолчанию UR_SCRIPT_PATH)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(opts)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.SendScript(optionalArg(args))
			printAsJSON(cmd.OutOrStdout(), "DispatchReport", report)
			return err
		},
	}
}

func newExecCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command>",
		Short: "Отправить одну команду URScript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(opts)
			if err != nil {
				return err
			}
			defer c.Close()

			report, err := c.SendImmediate(args[0])
			printAsJSON(cmd.OutOrStdout(), "DispatchReport", report)
			return err
		},
	}
}

func newExtractCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Извлечь целевые углы суставов из сценария",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient(opts)
			if err != nil {
				return err
			}
			defer c.Close()

			script, err := readScript(optionalArg(args), cfg)
			if err != nil {
				return err
			}
			target, err := c.ExtractJoints(script)
			if err != nil {
				return err
			}
			printAsJSON(cmd.OutOrStdout(), "MotionTarget", target)
			return nil
		},
	}
}

func newSimulateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [file]",
		Short: "Извлечь углы и передать их в симулятор",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient(opts)
			if err != nil {
				return err
			}
			defer c.Close()

			script, err := readScript(optionalArg(args), cfg)
			if err != nil {
				return err
			}
			target, err := c.Simulate(script)
			if err != nil {
				return err
			}
			printAsJSON(cmd.OutOrStdout(), "MotionTarget", target)
			return nil
		},
	}
}
