package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/increase/pkg/increase"
	"github.com/spf13/cobra"
)

// NewAccountsCommand creates the accounts command group
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acct"},
		Short:   "Manage accounts",
		Long:    "List, inspect, open and close Increase accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newAccountsCloseCommand())
	cmd.AddCommand(newAccountsBalanceCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var (
		limit    int64
		allPages bool
		status   []string
		entityID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "List accounts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := increase.AccountListParams{}.WithLimit(limit)
			if entityID != "" {
				params = params.WithEntityID(entityID)
			}

			if len(status) > 0 {
				statuses := make([]increase.AccountStatus, 0, len(status))
				for _, s := range status {
					statuses = append(statuses, increase.AccountStatus(s))
				}

				params = params.WithStatus(statuses...)
			}

			accounts, more, err := listPage(commandContext(cmd), allPages,
				func(ctx context.Context) (*increase.Page[increase.Account], error) {
					return client.Accounts().List(ctx, params)
				},
				func(ctx context.Context) *increase.PaginationIterator[increase.Account] {
					return client.Accounts().ListAutoPaging(ctx, params)
				})
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return render(cmd.OutOrStdout(), accounts, func(w io.Writer) error {
				return renderAccountTable(w, accounts, more)
			})
		},
	}

	addListFlags(cmd, &limit, &allPages)
	cmd.Flags().StringSliceVar(&status, "status", nil, "filter by status (open, closed)")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "filter by owning entity")

	return cmd
}

func renderAccountTable(w io.Writer, accounts []increase.Account, more bool) error {
	if len(accounts) == 0 {
		_, _ = io.WriteString(w, "No accounts found\n")

		return nil
	}

	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, []string{
			account.ID,
			account.Name,
			string(account.Status),
			string(account.Currency),
			string(account.Bank),
			account.CreatedAt.Format(dateLayout),
		})
	}

	err := renderTable(w, []string{"ID", "Name", "Status", "Currency", "Bank", "Created"}, rows)
	if err != nil {
		return err
	}

	printMoreHint(w, more)

	return nil
}

func renderAccountDetails(w io.Writer, account *increase.Account) error {
	return renderDetails(w, [][]string{
		{"ID", account.ID},
		{"Name", account.Name},
		{"Status", string(account.Status)},
		{"Currency", string(account.Currency)},
		{"Bank", string(account.Bank)},
		{"Entity ID", orNA(account.EntityID)},
		{"Program ID", account.ProgramID},
		{"Interest Rate", account.InterestRate},
		{"Interest Accrued", account.InterestAccrued},
		{"Created", account.CreatedAt.Format(time.RFC3339)},
		{"Closed", formatTime(account.ClosedAt)},
	})
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get account details",
		Long:  "Display detailed information about a specific account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return render(cmd.OutOrStdout(), account, func(w io.Writer) error {
				return renderAccountDetails(w, account)
			})
		},
	}
}

func newAccountsCreateCommand() *cobra.Command {
	var (
		entityID  string
		programID string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Open an account",
		Long:  "Open a new account with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := increase.NewAccountNewParams(args[0])
			if entityID != "" {
				params = params.WithEntityID(entityID)
			}

			if programID != "" {
				params = params.WithProgramID(programID)
			}

			account, err := client.Accounts().Create(commandContext(cmd), params)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			return render(cmd.OutOrStdout(), account, func(w io.Writer) error {
				return renderAccountDetails(w, account)
			})
		},
	}

	cmd.Flags().StringVar(&entityID, "entity-id", "", "entity that owns the account")
	cmd.Flags().StringVar(&programID, "program-id", "", "program the account belongs to")

	return cmd
}

func newAccountsCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close ACCOUNT_ID",
		Short: "Close an account",
		Long:  "Close an account. The balance must be zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Close(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to close account: %w", err)
			}

			return render(cmd.OutOrStdout(), account, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Closed account %s (%s)\n", account.Name, account.ID)

				return nil
			})
		},
	}
}

func newAccountsBalanceCommand() *cobra.Command {
	var atTime string

	cmd := &cobra.Command{
		Use:   "balance ACCOUNT_ID",
		Short: "Show an account balance",
		Long:  "Show the current and available balance of an account, optionally at a past time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := increase.AccountBalanceParams{}

			if atTime != "" {
				at, err := time.Parse(time.RFC3339, atTime)
				if err != nil {
					return fmt.Errorf("--at-time must be an RFC 3339 timestamp: %w", err)
				}

				params = params.WithAtTime(at)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			balance, err := client.Accounts().Balance(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}

			return render(cmd.OutOrStdout(), balance, func(w io.Writer) error {
				account, err := client.Accounts().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get account: %w", err)
				}

				return renderDetails(w, [][]string{
					{"Account ID", balance.AccountID},
					{"Current Balance", formatAmount(balance.CurrentBalance, account.Currency)},
					{"Available Balance", formatAmount(balance.AvailableBalance, account.Currency)},
				})
			})
		},
	}

	cmd.Flags().StringVar(&atTime, "at-time", "", "balance at this RFC 3339 time")

	return cmd
}
