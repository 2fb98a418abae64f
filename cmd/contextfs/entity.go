package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
)

func newCreateCommand(opts *globalOptions) *cobra.Command {
	var (
		typeTag string
		id      string
		title   string
		from    string
		sets    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an entity file",
		Long: `Serialize an entity to <root>/contexts/<type-directory>/<id>-<slug>.yaml.
Fields come from --from (a YAML mapping), then --set key=value pairs whose values
are parsed as YAML, then --id and --title. An existing file at the same path is
overwritten.`,
		Example: `  contextfs create --type feature --id FEAT-001 --title "User login"
  contextfs create --type task --id T-7 --set status=blocked --set 'deps=[T-1, T-2]'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType, err := contextfs.ParseEntityType(typeTag)
			if err != nil {
				return err
			}

			entity := contextfs.Entity{}
			if from != "" {
				data, err := os.ReadFile(from)
				if err != nil {
					return fmt.Errorf("failed to read entity file %s: %w", from, err)
				}
				if err := yaml.Unmarshal(data, &entity); err != nil {
					return fmt.Errorf("failed to parse entity file %s: %w", from, err)
				}
				if entity == nil {
					entity = contextfs.Entity{}
				}
			}
			for _, kv := range sets {
				key, value, err := parseSet(kv)
				if err != nil {
					return err
				}
				entity[key] = value
			}
			if id != "" {
				entity["id"] = id
			}
			if title != "" {
				entity["title"] = title
			}

			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			path, err := e.store.CreateEntity(e.cfg.RootDir, entity, entityType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeTag, "type", "t", "", "entity type: governance, feature, userstory, spec, task, service, package")
	cmd.Flags().StringVar(&id, "id", "", "entity id")
	cmd.Flags().StringVar(&title, "title", "", "entity title")
	cmd.Flags().StringVarP(&from, "from", "f", "", "YAML file holding the base entity")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a field, key=value (value parsed as YAML)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

// parseSet splits key=value and decodes value as a YAML scalar, list or map.
func parseSet(kv string) (string, any, error) {
	key, raw, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid --set %q: expected key=value", kv)
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, fmt.Errorf("invalid --set %q: %w", kv, err)
	}
	if value == nil && raw != "null" && raw != "~" {
		value = raw
	}
	return key, value, nil
}

// loadAll loads the repository, reporting skipped files as warnings.
func loadAll(cmd *cobra.Command, e *env, types ...contextfs.EntityType) ([]contextfs.LoadedEntity, error) {
	entities, err := e.store.LoadEntities(e.cfg.RootDir, types...)
	if err != nil {
		if contextfs.IsValidationError(err) {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return entities, nil
}

func printEntities(cmd *cobra.Command, entities []contextfs.LoadedEntity) {
	out := cmd.OutOrStdout()
	for _, le := range entities {
		fmt.Fprintf(out, "%s\t%s\t%s\n", le.Type, le.ID(), le.File)
	}
}

func parseTypes(tags []string) ([]contextfs.EntityType, error) {
	types := make([]contextfs.EntityType, 0, len(tags))
	for _, tag := range tags {
		t, err := contextfs.ParseEntityType(tag)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func newListCommand(opts *globalOptions) *cobra.Command {
	var typeTags []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities in the repository",
		Args:  cobra.NoArgs,
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
			printEntities(cmd, entities)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&typeTags, "type", "t", nil, "only list these entity types")

	return cmd
}

func newRelatedCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "related [id]",
		Short: "List the entities an entity references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			entities, err := loadAll(cmd, e)
			if err != nil {
				return err
			}
			if _, ok := contextfs.FindByID(entities, args[0]); !ok {
				return fmt.Errorf("%s: %w", args[0], contextfs.ErrEntityNotFound)
			}
			printEntities(cmd, contextfs.Related(entities, args[0]))
			return nil
		},
	}
}

func newGapsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gaps",
		Short: "Report incomplete entities and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			entities, err := loadAll(cmd, e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			gaps := contextfs.Gaps(entities)
			for _, gap := range gaps {
				fmt.Fprintf(out, "gap: %s\n", gap)
			}
			for _, rec := range contextfs.Recommendations(entities, gaps) {
				fmt.Fprintf(out, "recommendation: %s\n", rec)
			}
			return nil
		},
	}
}

func newOrderCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "List entities so that referenced entities come first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			entities, err := loadAll(cmd, e)
			if err != nil {
				return err
			}
			ordered, err := contextfs.DependencyOrder(entities)
			if err != nil {
				return err
			}
			printEntities(cmd, ordered)
			return nil
		},
	}
}
