package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/spf13/cobra"
)

// NewEntitiesCommand creates the entities command group
func NewEntitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entities",
		Aliases: []string{"entity"},
		Short:   "Manage entities",
		Long:    "List and inspect the legal entities that own accounts",
	}

	cmd.AddCommand(newEntitiesListCommand())
	cmd.AddCommand(newEntitiesGetCommand())

	return cmd
}

func newEntitiesListCommand() *cobra.Command {
	var (
		limit    int64
		allPages bool
		status   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := increase.EntityListParams{}.WithLimit(limit)

			if len(status) > 0 {
				statuses := make([]increase.EntityStatus, 0, len(status))
				for _, s := range status {
					statuses = append(statuses, increase.EntityStatus(s))
				}

				params = params.WithStatus(statuses...)
			}

			entities, more, err := listPage(commandContext(cmd), allPages,
				func(ctx context.Context) (*increase.Page[increase.Entity], error) {
					return client.Entities().List(ctx, params)
				},
				func(ctx context.Context) *increase.PaginationIterator[increase.Entity] {
					return client.Entities().ListAutoPaging(ctx, params)
				})
			if err != nil {
				return fmt.Errorf("failed to list entities: %w", err)
			}

			return render(cmd.OutOrStdout(), entities, func(w io.Writer) error {
				if len(entities) == 0 {
					_, _ = io.WriteString(w, "No entities found\n")

					return nil
				}

				rows := make([][]string, 0, len(entities))
				for _, entity := range entities {
					rows = append(rows, []string{
						entity.ID,
						entityName(&entity),
						string(entity.Structure),
						string(entity.Status),
						entity.CreatedAt.Format(dateLayout),
					})
				}

				err := renderTable(w, []string{"ID", "Name", "Structure", "Status", "Created"}, rows)
				if err != nil {
					return err
				}

				printMoreHint(w, more)

				return nil
			})
		},
	}

	addListFlags(cmd, &limit, &allPages)
	cmd.Flags().StringSliceVar(&status, "status", nil, "filter by status (active, archived, disabled)")

	return cmd
}

func newEntitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTITY_ID",
		Short: "Get entity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			entity, err := client.Entities().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get entity: %w", err)
			}

			return render(cmd.OutOrStdout(), entity, func(w io.Writer) error {
				return renderDetails(w, [][]string{
					{"ID", entity.ID},
					{"Name", entityName(entity)},
					{"Structure", string(entity.Structure)},
					{"Status", string(entity.Status)},
					{"Description", orNA(entity.Description)},
					{"Supplemental Documents", fmt.Sprintf("%d", len(entity.SupplementalDocuments))},
					{"Details Confirmed", formatTime(entity.DetailsConfirmedAt)},
					{"Created", entity.CreatedAt.Format(time.RFC3339)},
				})
			})
		},
	}
}

// entityName picks the display name for whichever structure is populated.
func entityName(entity *increase.Entity) string {
	switch {
	case entity.Corporation != nil:
		return entity.Corporation.Name
	case entity.NaturalPerson != nil:
		return entity.NaturalPerson.Name
	default:
		return NotAvailable
	}
}
