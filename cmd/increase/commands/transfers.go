package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/spf13/cobra"
)

// NewTransfersCommand creates the account transfers command group
func NewTransfersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfers",
		Aliases: []string{"transfer"},
		Short:   "Manage account transfers",
		Long:    "List, inspect, create, approve and cancel transfers between your accounts",
	}

	cmd.AddCommand(newTransfersListCommand())
	cmd.AddCommand(newTransfersGetCommand())
	cmd.AddCommand(newTransfersCreateCommand())
	cmd.AddCommand(newTransfersApproveCommand())
	cmd.AddCommand(newTransfersCancelCommand())

	return cmd
}

func newTransfersListCommand() *cobra.Command {
	var (
		limit     int64
		allPages  bool
		accountID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List account transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := increase.AccountTransferListParams{}.WithLimit(limit)
			if accountID != "" {
				params = params.WithAccountID(accountID)
			}

			transfers, more, err := listPage(commandContext(cmd), allPages,
				func(ctx context.Context) (*increase.Page[increase.AccountTransfer], error) {
					return client.AccountTransfers().List(ctx, params)
				},
				func(ctx context.Context) *increase.PaginationIterator[increase.AccountTransfer] {
					return client.AccountTransfers().ListAutoPaging(ctx, params)
				})
			if err != nil {
				return fmt.Errorf("failed to list transfers: %w", err)
			}

			return render(cmd.OutOrStdout(), transfers, func(w io.Writer) error {
				if len(transfers) == 0 {
					_, _ = io.WriteString(w, "No transfers found\n")

					return nil
				}

				rows := make([][]string, 0, len(transfers))
				for _, transfer := range transfers {
					rows = append(rows, []string{
						transfer.ID,
						formatAmount(transfer.Amount, transfer.Currency),
						string(transfer.Status),
						transfer.AccountID,
						transfer.DestinationAccountID,
						transfer.CreatedAt.Format(dateLayout),
					})
				}

				err := renderTable(w, []string{"ID", "Amount", "Status", "From", "To", "Created"}, rows)
				if err != nil {
					return err
				}

				printMoreHint(w, more)

				return nil
			})
		},
	}

	addListFlags(cmd, &limit, &allPages)
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by source account")

	return cmd
}

func renderTransferDetails(w io.Writer, transfer *increase.AccountTransfer) error {
	approved := NotAvailable
	if transfer.Approval != nil {
		approved = transfer.Approval.ApprovedAt.Format(time.RFC3339)
	}

	canceled := NotAvailable
	if transfer.Cancellation != nil {
		canceled = transfer.Cancellation.CanceledAt.Format(time.RFC3339)
	}

	return renderDetails(w, [][]string{
		{"ID", transfer.ID},
		{"Amount", formatAmount(transfer.Amount, transfer.Currency)},
		{"Status", string(transfer.Status)},
		{"Description", transfer.Description},
		{"From Account", transfer.AccountID},
		{"To Account", transfer.DestinationAccountID},
		{"Transaction ID", orNA(transfer.TransactionID)},
		{"Approved", approved},
		{"Canceled", canceled},
		{"Created", transfer.CreatedAt.Format(time.RFC3339)},
	})
}

func newTransfersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSFER_ID",
		Short: "Get transfer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.AccountTransfers().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transfer: %w", err)
			}

			return render(cmd.OutOrStdout(), transfer, func(w io.Writer) error {
				return renderTransferDetails(w, transfer)
			})
		},
	}
}

func newTransfersCreateCommand() *cobra.Command {
	var (
		from            string
		to              string
		amount          int64
		description     string
		requireApproval bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Move money between two accounts",
		Long:  "Create an account transfer. The amount is in the minor unit of the currency (cents for USD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" {
				return constants.ErrTransferAccountsRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := increase.NewAccountTransferNewParams(from, amount, description, to)
			if requireApproval {
				params = params.WithRequireApproval(true)
			}

			transfer, err := client.AccountTransfers().Create(commandContext(cmd), params)
			if err != nil {
				return fmt.Errorf("failed to create transfer: %w", err)
			}

			return render(cmd.OutOrStdout(), transfer, func(w io.Writer) error {
				return renderTransferDetails(w, transfer)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source account ID")
	cmd.Flags().StringVar(&to, "to", "", "destination account ID")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in minor units")
	cmd.Flags().StringVar(&description, "description", "", "description shown on both statements")
	cmd.Flags().BoolVar(&requireApproval, "require-approval", false, "hold the transfer until it is approved")

	return cmd
}

func newTransfersApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve TRANSFER_ID",
		Short: "Approve a pending transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.AccountTransfers().Approve(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to approve transfer: %w", err)
			}

			return render(cmd.OutOrStdout(), transfer, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Transfer %s is %s\n", transfer.ID, transfer.Status)

				return nil
			})
		},
	}
}

func newTransfersCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel TRANSFER_ID",
		Short: "Cancel a pending transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.AccountTransfers().Cancel(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel transfer: %w", err)
			}

			return render(cmd.OutOrStdout(), transfer, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Transfer %s is %s\n", transfer.ID, transfer.Status)

				return nil
			})
		},
	}
}
