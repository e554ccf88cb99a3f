package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/Swyamk/rjagro-sub000/closure"
	"github.com/Swyamk/rjagro-sub000/model"
	"github.com/Swyamk/rjagro-sub000/tables"
)

type closureOptions struct {
	revenue float64
	endDate string
	submit  bool
}

func closureCommand(settings *Settings) *cobra.Command {
	options := closureOptions{}

	cmd := &cobra.Command{
		Use:   "closure <batch_id>",
		Short: "Compute the closure summary of a batch, and optionally submit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batchID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid batch id %s", args[0])
			}

			env, err := newEnvironment(settings)
			if err != nil {
				return err
			}

			return runClosure(cmd.Context(), cmd.OutOrStdout(), env, batchID, options)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&options.revenue, "revenue", 0, "total revenue of the batch")
	flags.StringVar(&options.endDate, "end-date", "", "closing date as YYYY-MM-DD, today if empty")
	flags.BoolVar(&options.submit, "submit", false, "store the summary in the backend")

	return cmd
}

func runClosure(ctx context.Context, out io.Writer, env *environment, batchID int64, options closureOptions) error {
	input := closure.Input{Revenue: options.revenue}

	if options.endDate != "" {
		endDate, ok := model.ParseDate(options.endDate)
		if !ok {
			return fmt.Errorf("invalid end date %s", options.endDate)
		}
		input.EndDate = endDate
	}

	var batches []model.Batch
	if err := env.client.FetchInto(ctx, "batches", &batches); err != nil {
		return err
	}

	found := false
	for _, batch := range batches {
		if batch.BatchID == batchID {
			input.Batch, found = batch, true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown batch %d", batchID)
	}

	if err := env.client.FetchInto(ctx, "batch_requirements", &input.Requirements); err != nil {
		return err
	}
	if err := env.client.FetchInto(ctx, "batch_allocations", &input.Allocations); err != nil {
		return err
	}
	if err := env.client.FetchInto(ctx, "farmer_commission", &input.Commissions); err != nil {
		return err
	}

	summary := closure.Compute(input)
	if err := renderClosure(out, summary); err != nil {
		return err
	}

	if !options.submit {
		return nil
	}

	if err := env.client.Insert(ctx, "batch_closure_summary", summary.Payload()); err != nil {
		return fmt.Errorf("cannot submit closure of batch %d: %w", batchID, err)
	}

	log.WithFields("batch", batchID, "grossProfit", summary.GrossProfit()).Info("Batch closure submitted")
	_, err := fmt.Fprintf(out, "\nClosure of batch %d submitted\n", batchID)

	return err
}

func renderClosure(out io.Writer, summary closure.Summary) error {
	w := newTabWriter(out)

	fmt.Fprintf(w, "BATCH\t%d\n", summary.Batch.BatchID)
	fmt.Fprintf(w, "FARMER\t%s\n", orDash(summary.Batch.FarmerName))
	fmt.Fprintf(w, "PERIOD\t%s - %s\n", orDash(summary.Batch.StartDate.String()), summary.EndDate)
	fmt.Fprintf(w, "BIRDS\t%d of %d (mortality %.1f%%)\n",
		summary.Batch.CurrentBirdCount, summary.Batch.InitialBirdCount, summary.MortalityRate())

	costs := make(map[int64]closure.RequirementCost, len(summary.Costs))
	requirements := make([]model.BatchRequirement, 0, len(summary.Costs))
	for _, cost := range summary.Costs {
		costs[cost.Requirement.RequirementID] = cost
		requirements = append(requirements, cost.Requirement)
	}
	for _, requirement := range tables.BatchRequirements().CurrentOrder(requirements) {
		cost := costs[requirement.RequirementID]
		fmt.Fprintf(w, "REQ #%d\t%s (%s) %.2f\n",
			requirement.RequirementID, orDash(requirement.ItemName), cost.Category, cost.AllocatedValue)
	}

	for _, category := range closure.Categories {
		fmt.Fprintf(w, "%s\t%.2f\n", category, summary.Totals[category])
	}
	fmt.Fprintf(w, "Farmer commission\t%.2f\n", summary.Commission)
	fmt.Fprintf(w, "TOTAL EXPENSES\t%.2f\n", summary.TotalExpenses())
	fmt.Fprintf(w, "REVENUE\t%.2f\n", summary.Revenue)
	fmt.Fprintf(w, "GROSS PROFIT\t%.2f\n", summary.GrossProfit())

	margin := summary.ProfitMargin()
	fmt.Fprintf(w, "PROFIT MARGIN\t%.1f%% (%s)\n", margin, closure.Band(margin))

	return w.Flush()
}
