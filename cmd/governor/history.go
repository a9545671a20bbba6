package main

import (
	"fmt"
	"time"

	"github.com/insightloop/governor/explain"
	"github.com/insightloop/governor/internal/clifmt"
	"github.com/insightloop/governor/internal/strutil"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit   int
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "history [action-id]",
		Short: "Show explainable-action records, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := newLogger()

			store, sink := openLedger(log)
			if sink != nil {
				_ = sink.Close()
			}

			var (
				recs []explain.ExplainableAction
				err  error
			)
			if len(args) == 1 {
				recs, err = store.ListByAction(ctx, args[0], limit)
			} else {
				recs, err = store.Recent(ctx, limit)
			}
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), clifmt.Dim("no records"))
				return nil
			}

			for _, rec := range recs {
				printRecord(cmd, rec, verbose)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records to show")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "include technical detail and the causal chain")
	return cmd
}

func printRecord(cmd *cobra.Command, rec explain.ExplainableAction, verbose bool) {
	out := cmd.OutOrStdout()

	verdict := clifmt.Fail("denied")
	if rec.Admitted {
		verdict = clifmt.Success("ran")
	}
	fmt.Fprintf(out, "%s  %s  %s  %s  %s\n",
		clifmt.Dim(rec.CreatedAt.Format(time.RFC3339)),
		rec.ActionID,
		verdict,
		clifmt.ModeBadge(string(rec.Mode)),
		strutil.Ellipsize(rec.UserSummary, 100),
	)
	if !verbose {
		return
	}

	td := rec.TechnicalDetail
	fmt.Fprintf(out, "    requested=%s effective=%s reason=%s confidence=%.2f risk=%s reversibility=%s\n",
		td.RequestedMode, td.EffectiveMode, td.Reason, td.Confidence, rec.RiskClass, rec.Reversibility)
	for _, step := range rec.CausalChain {
		marker := "  "
		if step.Current {
			marker = clifmt.Key("->")
		}
		fmt.Fprintf(out, "    %s %s  %s (%s)\n",
			marker, clifmt.Dim(step.Timestamp.Format(time.RFC3339)), step.Step, step.Actor)
	}
}
