package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	sslog "github.com/msto63/smallstring/foundation/core/log"
	"github.com/msto63/smallstring/pkg/bufpool"
	"github.com/msto63/smallstring/pkg/smallstr"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the reference construction, copy and move scenarios",
	Long: `Replays the reference scenarios for thresholds N = 2 and N = 25:
construction from text, move and copy construction, moved-from sources and
an out-of-range access. Each line prints size, terminated view and the
rendering of the moved-from value, separated by tabs.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("smallstr demo"))

	before := bufpool.Default().Stats()
	if err := writeDemo(out); err != nil {
		printError(cmd, "demo", err)
		return err
	}
	delta := bufpool.Default().Stats().Sub(before)

	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("pool: %d gets, %d releases, %d live", delta.Gets, delta.Releases, delta.Live)))
	appLogger.Info("demo completed", sslog.Fields{
		"gets":     delta.Gets,
		"releases": delta.Releases,
		"live":     delta.Live,
	})
	return nil
}

// writeDemo prints one tab separated line per scenario
func writeDemo(w io.Writer) error {
	// N = 2: "abc" does not fit and is heap-backed
	val := smallstr.MustNew[[2]byte]("abc")
	val1 := smallstr.Take(val)
	fmt.Fprintf(w, "%d\t%s\t%s\n", val1.Size(), view(val1.CString()), val)

	val2 := smallstr.Clone(val1)
	val3 := smallstr.Take(val2)
	fmt.Fprintf(w, "%d\t%s\t%s\n", val3.Size(), view(val3.CString()), val2)

	// N = 25: short texts stay inline
	val4 := smallstr.MustNew[[25]byte]("abcd")
	val5 := smallstr.Take(val4)
	val6 := smallstr.Take(val4)
	fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", val5.Size(), view(val5.CString()), val4, val6.Size())

	val7 := smallstr.MustNew[[25]byte]("abcdef")
	val8 := smallstr.Take(val7)
	val9 := smallstr.Take(val7)
	fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", val8.Size(), view(val8.CString()), val7, val9.Size())

	defer func() {
		for _, s := range []*smallstr.String[[2]byte]{val, val1, val2, val3} {
			s.Release()
		}
		for _, s := range []*smallstr.String[[25]byte]{val4, val5, val6, val7, val8, val9} {
			s.Release()
		}
	}()

	_, err := val8.At(6)
	if !errors.Is(err, smallstr.ErrIndexOutOfRange) {
		return fmt.Errorf("expected an index error for position 6, got %v", err)
	}
	fmt.Fprintf(w, "%s %v\n", okStyle.Render("out of range access caught:"), err)
	return nil
}

// view renders a terminated view without its terminator
func view(c []byte) string {
	if c == nil {
		return "(nil)"
	}
	return string(c[:len(c)-1])
}
