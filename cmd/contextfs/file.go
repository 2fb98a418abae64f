package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newReadCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read [path]",
		Short: "Print the content of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			content, err := e.store.Read(args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newWriteCommand(opts *globalOptions) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "write [path]",
		Short: "Create or overwrite a file",
		Long:  "Write --content, or standard input when --content is not given, to the file at path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if cmd.Flags().Changed("content") {
				data = []byte(content)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read standard input: %w", err)
				}
				if data == nil {
					data = []byte{}
				}
			}

			return e.store.Write(args[0], data)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "content to write (default: read standard input)")

	return cmd
}
