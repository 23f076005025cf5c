package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/spf13/cobra"
)

// NewCardsCommand creates the cards command group
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Manage cards",
		Long:    "List and inspect cards issued against your accounts",
	}

	cmd.AddCommand(newCardsListCommand())
	cmd.AddCommand(newCardsGetCommand())

	return cmd
}

func newCardsListCommand() *cobra.Command {
	var (
		limit     int64
		allPages  bool
		status    []string
		accountID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := increase.CardListParams{}.WithLimit(limit)
			if accountID != "" {
				params = params.WithAccountID(accountID)
			}

			if len(status) > 0 {
				statuses := make([]increase.CardStatus, 0, len(status))
				for _, s := range status {
					statuses = append(statuses, increase.CardStatus(s))
				}

				params = params.WithStatus(statuses...)
			}

			cards, more, err := listPage(commandContext(cmd), allPages,
				func(ctx context.Context) (*increase.Page[increase.Card], error) {
					return client.Cards().List(ctx, params)
				},
				func(ctx context.Context) *increase.PaginationIterator[increase.Card] {
					return client.Cards().ListAutoPaging(ctx, params)
				})
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}

			return render(cmd.OutOrStdout(), cards, func(w io.Writer) error {
				if len(cards) == 0 {
					_, _ = io.WriteString(w, "No cards found\n")

					return nil
				}

				rows := make([][]string, 0, len(cards))
				for _, card := range cards {
					rows = append(rows, []string{
						card.ID,
						card.Last4,
						string(card.Status),
						orNA(card.Description),
						card.AccountID,
						formatExpiration(card.ExpirationMonth, card.ExpirationYear),
					})
				}

				err := renderTable(w, []string{"ID", "Last 4", "Status", "Description", "Account", "Expires"}, rows)
				if err != nil {
					return err
				}

				printMoreHint(w, more)

				return nil
			})
		},
	}

	addListFlags(cmd, &limit, &allPages)
	cmd.Flags().StringSliceVar(&status, "status", nil, "filter by status (active, disabled, canceled)")
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by account")

	return cmd
}

func newCardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CARD_ID",
		Short: "Get card details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			card, err := client.Cards().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get card: %w", err)
			}

			return render(cmd.OutOrStdout(), card, func(w io.Writer) error {
				return renderDetails(w, [][]string{
					{"ID", card.ID},
					{"Last 4", card.Last4},
					{"Status", string(card.Status)},
					{"Description", orNA(card.Description)},
					{"Account ID", card.AccountID},
					{"Entity ID", orNA(card.EntityID)},
					{"Expires", formatExpiration(card.ExpirationMonth, card.ExpirationYear)},
					{"Billing Address", formatBillingAddress(card.BillingAddress)},
					{"Created", card.CreatedAt.Format(time.RFC3339)},
				})
			})
		},
	}
}

func formatExpiration(month, year int64) string {
	return fmt.Sprintf("%02d/%d", month, year)
}

func formatBillingAddress(address increase.CardBillingAddress) string {
	parts := make([]string, 0, 5)

	for _, part := range []*string{address.Line1, address.Line2, address.City, address.State, address.PostalCode} {
		if part != nil && *part != "" {
			parts = append(parts, *part)
		}
	}

	if len(parts) == 0 {
		return NotAvailable
	}

	return strings.Join(parts, ", ")
}
