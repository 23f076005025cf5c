package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/spf13/cobra"
)

// NewTransactionsCommand creates the transactions command group
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "txn"},
		Short:   "View transactions",
		Long:    "List and inspect settled transactions",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	var (
		limit     int64
		allPages  bool
		accountID string
		category  []string
		since     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := increase.TransactionListParams{}.WithLimit(limit)
			if accountID != "" {
				params = params.WithAccountID(accountID)
			}

			if len(category) > 0 {
				categories := make([]increase.TransactionSourceCategory, 0, len(category))
				for _, c := range category {
					categories = append(categories, increase.TransactionSourceCategory(c))
				}

				params = params.WithCategory(categories...)
			}

			if since != "" {
				at, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("--since must be an RFC 3339 timestamp: %w", err)
				}

				params = params.WithCreatedAt(increase.CreatedAtFilter{OnOrAfter: increase.F(at)})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			transactions, more, err := listPage(commandContext(cmd), allPages,
				func(ctx context.Context) (*increase.Page[increase.Transaction], error) {
					return client.Transactions().List(ctx, params)
				},
				func(ctx context.Context) *increase.PaginationIterator[increase.Transaction] {
					return client.Transactions().ListAutoPaging(ctx, params)
				})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return render(cmd.OutOrStdout(), transactions, func(w io.Writer) error {
				if len(transactions) == 0 {
					_, _ = io.WriteString(w, "No transactions found\n")

					return nil
				}

				rows := make([][]string, 0, len(transactions))
				for _, txn := range transactions {
					rows = append(rows, []string{
						txn.ID,
						formatAmount(txn.Amount, txn.Currency),
						txn.Description,
						string(txn.Source.Category),
						txn.AccountID,
						txn.CreatedAt.Format(dateLayout),
					})
				}

				err := renderTable(w, []string{"ID", "Amount", "Description", "Category", "Account", "Created"}, rows)
				if err != nil {
					return err
				}

				printMoreHint(w, more)

				return nil
			})
		},
	}

	addListFlags(cmd, &limit, &allPages)
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by account")
	cmd.Flags().StringSliceVar(&category, "category", nil, "filter by source category")
	cmd.Flags().StringVar(&since, "since", "", "only transactions created at or after this RFC 3339 time")

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			txn, err := client.Transactions().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			return render(cmd.OutOrStdout(), txn, func(w io.Writer) error {
				return renderDetails(w, [][]string{
					{"ID", txn.ID},
					{"Amount", formatAmount(txn.Amount, txn.Currency)},
					{"Description", txn.Description},
					{"Category", string(txn.Source.Category)},
					{"Account ID", txn.AccountID},
					{"Route ID", orNA(txn.RouteID)},
					{"Route Type", formatRouteType(txn.RouteType)},
					{"Created", txn.CreatedAt.Format(time.RFC3339)},
				})
			})
		},
	}
}

func formatRouteType(routeType *increase.TransactionRouteType) string {
	if routeType == nil {
		return NotAvailable
	}

	return string(*routeType)
}
