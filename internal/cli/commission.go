package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/Swyamk/rjagro-sub000/ledger"
	"github.com/Swyamk/rjagro-sub000/model"
)

type commissionOptions struct {
	amount      float64
	description string
	createdBy   int64
	submit      bool
}

// commissionRequest is the insert payload of a farmer commission. The
// backend books the ledger entries itself.
type commissionRequest struct {
	FarmerID         int64        `json:"farmer_id"`
	CommissionAmount model.Amount `json:"commission_amount"`
	Description      string       `json:"description,omitempty"`
	CreatedBy        *int64       `json:"created_by,omitempty"`
}

func commissionCommand(settings *Settings) *cobra.Command {
	options := commissionOptions{}

	cmd := &cobra.Command{
		Use:   "commission <farmer_id>",
		Short: "Show the ledger entries of a farmer commission, and optionally pay it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			farmerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid farmer id %s", args[0])
			}

			env, err := newEnvironment(settings)
			if err != nil {
				return err
			}

			return runCommission(cmd.Context(), cmd.OutOrStdout(), env, farmerID, options)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&options.amount, "amount", 0, "commission amount")
	flags.StringVar(&options.description, "description", "", "description of the commission")
	flags.Int64Var(&options.createdBy, "by", 0, "user id booking the commission")
	flags.BoolVar(&options.submit, "submit", false, "store the commission in the backend")

	return cmd
}

func runCommission(ctx context.Context, out io.Writer, env *environment, farmerID int64, options commissionOptions) error {
	var createdBy *int64
	if options.createdBy != 0 {
		createdBy = &options.createdBy
	}

	entries, err := ledger.NewCommissionEntries(ledger.Commission{
		FarmerID:  farmerID,
		Amount:    model.Amount(options.amount),
		CreatedBy: createdBy,
	})
	if err != nil {
		return err
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "ACCOUNT\tDEBIT\tCREDIT\tNARRATION")
	for _, entry := range entries {
		if err := ledger.ValidateEntry(entry); err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", entry.AccountID, side(entry.Debit), side(entry.Credit), entry.Narration)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !options.submit {
		return nil
	}

	err = env.client.Insert(ctx, "farmer_commission", commissionRequest{
		FarmerID:         farmerID,
		CommissionAmount: model.Amount(options.amount),
		Description:      options.description,
		CreatedBy:        createdBy,
	})
	if err != nil {
		return fmt.Errorf("cannot submit commission of farmer %d: %w", farmerID, err)
	}

	log.WithFields("farmer", farmerID, "amount", options.amount).Info("Farmer commission submitted")
	_, err = fmt.Fprintf(out, "\nCommission of farmer %d submitted\n", farmerID)

	return err
}

func side(amount *model.Amount) string {
	if amount == nil {
		return "-"
	}
	return amount.String()
}
