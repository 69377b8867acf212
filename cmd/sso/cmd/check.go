package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	sslog "github.com/msto63/smallstring/foundation/core/log"
	"github.com/msto63/smallstring/pkg/bufpool"
	"github.com/msto63/smallstring/pkg/core/config"
	"github.com/msto63/smallstring/pkg/core/health"
	"github.com/msto63/smallstring/pkg/smallstr"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run self checks against the string and buffer pool invariants",
	Long: `Runs a short workload and then checks, concurrently:

  config     - the loaded configuration is valid
  roundtrip  - every supported threshold stores N-1 bytes inline and N bytes on the heap
  pool       - no buffer is live or was released twice

The command fails when any check is unhealthy.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if _, err := runWorkload(ctx, 512); err != nil {
		printError(cmd, "check workload", err)
		return err
	}
	// Checks run concurrently, so everything that takes buffers from the
	// pool finishes before the pool is inspected.
	roundtrip := roundtripCheck()

	registry := health.NewRegistry("smallstring", Version)
	registry.RegisterFunc("config", configCheck(appConfig))
	registry.RegisterFunc("roundtrip", func(context.Context) health.CheckResult { return roundtrip })
	registry.Register(health.PoolCheck("pool", bufpool.Default(), 0))

	report := registry.Check(ctx)
	appLogger.Info("self check completed", sslog.Fields{
		"status": string(report.Status),
		"checks": len(report.Checks),
	})

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, titleStyle.Render("smallstr check"))
		rows := make([][]string, 0, len(report.Checks))
		for _, c := range report.Checks {
			rows = append(rows, []string{c.Name, statusStyle(c.Status).Render(string(c.Status)), c.Message})
		}
		fmt.Fprint(out, renderTable([]string{"CHECK", "STATUS", "MESSAGE"}, rows))
		fmt.Fprintln(out, statusStyle(report.Status).Render("overall: "+string(report.Status)))
	}

	if !report.Healthy() {
		err := fmt.Errorf("self check %s", report.Status)
		printError(cmd, "check", err)
		return err
	}
	return nil
}

func configCheck(cfg *config.Config) func(context.Context) health.CheckResult {
	return func(ctx context.Context) health.CheckResult {
		if err := cfg.Validate(); err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		return health.CheckResult{
			Status:  health.StatusHealthy,
			Message: "threshold " + strconv.Itoa(cfg.Inspect.Threshold),
		}
	}
}

// roundtripCheck builds texts of length N-1 and N for every supported
// threshold and verifies mode, size and terminated view
func roundtripCheck() health.CheckResult {
	thresholds := slices.Clone(config.SupportedThresholds)
	slices.Sort(thresholds)

	var failures []string
	for _, n := range thresholds {
		inspect := inspectors[n]
		for _, length := range []int{n - 1, n} {
			text := strings.Repeat("x", length)
			want := smallstr.ModeInline
			if length >= n {
				want = smallstr.ModeHeap
			}

			res, err := inspect(text)
			switch {
			case err != nil:
				failures = append(failures, fmt.Sprintf("N=%d len=%d: %v", n, length, err))
			case res.Mode != want:
				failures = append(failures, fmt.Sprintf("N=%d len=%d: mode %s, want %s", n, length, res.Mode, want))
			case res.Size != length || res.View != strconv.Quote(text+"\x00"):
				failures = append(failures, fmt.Sprintf("N=%d len=%d: size %d view %s", n, length, res.Size, res.View))
			}
		}
	}

	if len(failures) > 0 {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: failures[0],
			Details: map[string]interface{}{"failures": failures},
		}
	}
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d thresholds", len(thresholds)),
	}
}
