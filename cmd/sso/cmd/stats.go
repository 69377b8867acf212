package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	sslog "github.com/msto63/smallstring/foundation/core/log"
	"github.com/msto63/smallstring/pkg/bufpool"
	"github.com/msto63/smallstring/pkg/smallstr"
)

var statsCount int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run a workload and report buffer pool statistics",
	Long: `Runs a construction, copy, move, assignment and release workload over
texts of varying length and reports the buffer pool counters. The command
fails if any heap buffer is still live afterwards.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsCount, "count", "c", 0, "workload iterations (default from config)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	count := statsCount
	if count == 0 {
		count = appConfig.Stats.Count
	}

	ctx := cmd.Context()
	var cancel context.CancelFunc
	if timeout := appConfig.Stats.Timeout.Duration; timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	pool := bufpool.Default()
	before := pool.Stats()
	timer := appLogger.StartTimer("workload").WithField("count", count)

	done, err := runWorkload(ctx, count)
	if err != nil {
		timer.StopWithError(err)
		printError(cmd, "workload", err)
		return err
	}
	elapsed := timer.Stop()

	st := pool.Stats().Sub(before)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("smallstr stats"))
	fmt.Fprintln(out, panelStyle.Render(renderStats(done, st)))
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("elapsed %s", elapsed)))

	if st.Live != 0 || st.DoubleReleases != 0 {
		err := fmt.Errorf("ownership violated: %d live buffers, %d double releases", st.Live, st.DoubleReleases)
		appLogger.ErrorWithErr("workload leaked buffers", err, sslog.Fields{"live": st.Live})
		printError(cmd, "stats", err)
		return err
	}

	fmt.Fprintln(out, okStyle.Render("no live buffers"))
	return nil
}

// runWorkload exercises every construction and assignment path count times.
// It returns the number of completed iterations.
func runWorkload(ctx context.Context, count int) (int, error) {
	const pattern = "the quick brown fox jumps over the lazy dog 0123456789"

	for i := 0; i < count; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}

		text := pattern[:i%len(pattern)]

		a, err := smallstr.New[[24]byte](text)
		if err != nil {
			return i, err
		}
		b := smallstr.Clone(a)
		c := smallstr.Take(b)
		a.CopyFrom(c)

		var d smallstr.String24
		d.MoveFrom(a)
		if err := d.Assign(pattern[:(i*7)%len(pattern)]); err != nil {
			return i, err
		}
		if d.Size() > 0 {
			if err := c.AssignCString(d.CString()); err != nil {
				return i, err
			}
		}

		a.Release()
		b.Release()
		c.Release()
		d.Release()
	}
	return count, nil
}

func renderStats(done int, st bufpool.Stats) string {
	rows := []struct {
		label string
		value string
	}{
		{"iterations", fmt.Sprint(done)},
		{"gets", fmt.Sprint(st.Gets)},
		{"hits", fmt.Sprint(st.Hits)},
		{"misses", fmt.Sprint(st.Misses)},
		{"hit rate", fmt.Sprintf("%.1f%%", st.HitRate())},
		{"releases", fmt.Sprint(st.Releases)},
		{"double releases", fmt.Sprint(st.DoubleReleases)},
		{"oversize", fmt.Sprint(st.Oversize)},
		{"live", fmt.Sprint(st.Live)},
		{"live bytes", fmt.Sprint(st.LiveBytes)},
	}

	labels := make([]string, len(rows))
	values := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = mutedStyle.Render(r.label)
		values[i] = r.value
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(labels, "\n"),
		"   ",
		lipgloss.NewStyle().Align(lipgloss.Right).Render(strings.Join(values, "\n")),
	)
}
