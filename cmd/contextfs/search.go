package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
)

func newSearchCommand(opts *globalOptions) *cobra.Command {
	var typeTags []string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find entities containing a text, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := parseTypes(typeTags)
			if err != nil {
				return err
			}

			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			entities, err := loadAll(cmd, e, types...)
			if err != nil {
				return err
			}
			results, err := contextfs.Search(entities, args[0], types...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", r.Type, r.ID, r.Name, r.Summary)
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no entities match %q\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&typeTags, "type", "t", nil, "only search these entity types")

	return cmd
}

func newSpecCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "spec [id]",
		Short: "Print the content of a specification entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			entities, err := loadAll(cmd, e, contextfs.TypeSpec)
			if err != nil {
				return err
			}
			content, err := contextfs.SpecContent(entities, args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newCatCommand(opts *globalOptions) *cobra.Command {
	var showInfo bool

	cmd := &cobra.Command{
		Use:   "cat [relative-path]",
		Short: "Print a file from inside the repository",
		Long:  "Print a file addressed relative to the repository root. Paths that leave the repository are refused.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			file, err := e.store.ReadInRepo(e.cfg.RootDir, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showInfo {
				fmt.Fprintf(out, "# %s (%d bytes, modified %s)\n", file.RelativePath, file.Size, file.ModTime.Format("2006-01-02T15:04:05Z07:00"))
			}
			_, err = io.WriteString(out, file.Content)
			return err
		},
	}

	cmd.Flags().BoolVar(&showInfo, "info", false, "print a header with size and modification time")

	return cmd
}

func newInfoCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the repository stack and domain descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			stack, err := e.store.LoadStackInfo(e.cfg.RootDir)
			if err != nil {
				return err
			}
			domains, err := e.store.LoadDomainInfo(e.cfg.RootDir)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(map[string]any{"stack": stack, "domains": domains}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
