package main

import (
	"fmt"

	"github.com/insightloop/governor/explain"
	"github.com/insightloop/governor/govern"
	"github.com/insightloop/governor/internal/clifmt"
	"github.com/insightloop/governor/internal/strutil"
	"github.com/spf13/cobra"
)

func newDecideCmd() *cobra.Command {
	var (
		actionFile string
		modeFlag   string
	)

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Run a governance decision for an action and record its explanation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := newLogger()

			action, err := loadActionFile(actionFile)
			if err != nil {
				return err
			}
			requested, err := govern.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			tracker, err := openTracker(ctx, log)
			if err != nil {
				return err
			}
			if _, ok := tracker.Snapshot(action.ID); !ok {
				if _, err := tracker.Register(ctx, action.ID); err != nil {
					return err
				}
				log.Info("action_registered", "action_id", action.ID)
			}

			cfg := governConfigFromViper()
			rc, err := tracker.Context(action.ID, requested, cfg.ThresholdFor(action.Kind))
			if err != nil {
				return err
			}
			decision, err := govern.Decide(action, rc)
			if err != nil {
				return err
			}

			rec := explain.NewBuilder().Build(action, decision, nil)

			store, sink := openLedger(log)
			recordID, err := store.Append(ctx, rec)
			if err != nil {
				log.Warn("ledger_append_error", "error", err.Error())
			} else if recordID != "" {
				rec.RecordID = recordID
			}
			if sink != nil {
				if err := sink.Emit(ctx, rec); err != nil {
					log.Warn("ledger_emit_error", "error", err.Error())
				}
				_ = sink.Close()
			}

			printDecision(cmd, action, decision, rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&actionFile, "action-file", "", "YAML file describing the action")
	cmd.Flags().StringVar(&modeFlag, "mode", string(govern.ModeManual), "requested automation mode")
	_ = cmd.MarkFlagRequired("action-file")
	return cmd
}

func printDecision(cmd *cobra.Command, action govern.ActionDescriptor, d govern.Decision, rec explain.ExplainableAction) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, clifmt.Headerf("Decision for %s (%s)", action.ID, action.Kind))
	if d.Admitted {
		fmt.Fprintf(out, "  admitted: %s\n", clifmt.Success("yes"))
	} else {
		fmt.Fprintf(out, "  admitted: %s\n", clifmt.Fail("no"))
	}
	fmt.Fprintf(out, "  requested mode: %s\n", clifmt.ModeBadge(string(d.RequestedMode)))
	fmt.Fprintf(out, "  effective mode: %s\n", clifmt.ModeBadge(string(d.EffectiveMode)))
	reason := string(d.Reason)
	switch {
	case d.Reason.Denial():
		reason = clifmt.Fail(reason)
	case d.Reason == govern.ReasonConfidenceDowngraded:
		reason = clifmt.Warn(reason)
	}
	fmt.Fprintf(out, "  reason: %s\n", reason)
	fmt.Fprintf(out, "  summary: %s\n", strutil.Ellipsize(rec.UserSummary, 160))
	if rec.RecordID != "" {
		fmt.Fprintf(out, "  record: %s\n", clifmt.Dim(rec.RecordID))
	}
}
