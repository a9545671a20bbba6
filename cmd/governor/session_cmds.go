package main

import (
	"fmt"
	"strings"

	"github.com/insightloop/governor/govern"
	"github.com/insightloop/governor/internal/clifmt"
	"github.com/insightloop/governor/session"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <action-id>",
		Short: "Register an action's subject content for validation tracking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, err := openTracker(ctx, newLogger())
			if err != nil {
				return err
			}
			st, err := tracker.Register(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", st.ActionID, clifmt.StatusBadge(string(st.Status)))
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Drive the content-validation lifecycle for an action",
	}
	cmd.AddCommand(newValidateStartCmd(), newValidateFinishCmd(), newValidateResetCmd())
	return cmd
}

func newValidateStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <action-id>",
		Short: "Mark a validation run as started",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, err := openTracker(ctx, newLogger())
			if err != nil {
				return err
			}
			st, err := tracker.BeginAnalysis(ctx, args[0])
			if err != nil {
				return err
			}
			printState(cmd, st)
			return nil
		},
	}
}

func newValidateFinishCmd() *cobra.Command {
	var (
		result    string
		issueSpec []string
	)
	cmd := &cobra.Command{
		Use:   "finish <action-id>",
		Short: "Record the outcome of a validation run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outcome, err := govern.ParseStatus(result)
			if err != nil {
				return err
			}
			issues, err := parseIssues(issueSpec)
			if err != nil {
				return err
			}

			tracker, err := openTracker(ctx, newLogger())
			if err != nil {
				return err
			}
			st, err := tracker.Complete(ctx, args[0], outcome, issues)
			if err != nil {
				return err
			}
			printState(cmd, st)
			return nil
		},
	}
	cmd.Flags().StringVar(&result, "result", "", "validation outcome: passed, warning or blocked")
	cmd.Flags().StringArrayVar(&issueSpec, "issue", nil, "issue as code:severity:message (repeatable)")
	_ = cmd.MarkFlagRequired("result")
	return cmd
}

func newValidateResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <action-id>",
		Short: "Reset validation after the subject content changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, err := openTracker(ctx, newLogger())
			if err != nil {
				return err
			}
			st, err := tracker.Reset(ctx, args[0])
			if err != nil {
				return err
			}
			printState(cmd, st)
			return nil
		},
	}
}

func newAckCmd() *cobra.Command {
	var revoke bool
	cmd := &cobra.Command{
		Use:   "ack <action-id>",
		Short: "Acknowledge (or revoke acknowledgment of) validation warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, err := openTracker(ctx, newLogger())
			if err != nil {
				return err
			}
			st, err := tracker.Acknowledge(ctx, args[0], !revoke)
			if err != nil {
				return err
			}
			printState(cmd, st)
			return nil
		},
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "clear the acknowledgment instead of setting it")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <action-id>",
		Short: "Show tracked validation state for an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, err := openTracker(ctx, newLogger())
			if err != nil {
				return err
			}
			st, ok := tracker.Snapshot(args[0])
			if !ok {
				return fmt.Errorf("action %q is not registered", args[0])
			}
			printState(cmd, st)
			return nil
		},
	}
}

func printState(cmd *cobra.Command, st session.State) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s", st.ActionID, clifmt.StatusBadge(string(st.Status)))
	if st.Status == govern.StatusWarning {
		if st.WarningAcknowledged {
			fmt.Fprintf(out, " (%s)", clifmt.Success("acknowledged"))
		} else {
			fmt.Fprintf(out, " (%s)", clifmt.Warn("unacknowledged"))
		}
	}
	fmt.Fprintln(out)
	for _, issue := range st.Issues {
		fmt.Fprintf(out, "  - [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
	}
}

func parseIssues(specs []string) ([]session.Issue, error) {
	var out []session.Issue
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid issue %q, want code:severity:message", spec)
		}
		out = append(out, session.Issue{
			Code:     strings.TrimSpace(parts[0]),
			Severity: strings.TrimSpace(parts[1]),
			Message:  strings.TrimSpace(parts[2]),
		})
	}
	return out, nil
}
