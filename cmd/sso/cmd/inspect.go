package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/smallstring/pkg/core/config"
	"github.com/msto63/smallstring/pkg/smallstr"
)

var inspectThreshold int

var inspectCmd = &cobra.Command{
	Use:   "inspect [text...]",
	Short: "Show storage mode, size and view for given texts",
	Long: `Builds a string for each text with the chosen inline threshold N and
prints its storage mode, size, capacity and terminated view.

Without arguments the texts from the [inspect] config section are used.
Supported thresholds: ` + joinThresholds(),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectThreshold, "threshold", "n", 0, "inline threshold N (default from config)")
	rootCmd.AddCommand(inspectCmd)
}

// inspection is the observable state of one constructed string
type inspection struct {
	Text      string
	Threshold int
	Mode      smallstr.Mode
	Size      int
	Cap       int
	View      string
}

func inspectWith[B smallstr.Array](text string) (inspection, error) {
	s, err := smallstr.New[B](text)
	if err != nil {
		return inspection{}, err
	}
	defer s.Release()

	return inspection{
		Text:      text,
		Threshold: s.Threshold(),
		Mode:      s.Mode(),
		Size:      s.Size(),
		Cap:       s.Cap(),
		View:      strconv.Quote(string(s.CString())),
	}, nil
}

// inspectors maps each supported threshold to its instantiation
var inspectors = map[int]func(string) (inspection, error){
	2:  inspectWith[[2]byte],
	4:  inspectWith[[4]byte],
	8:  inspectWith[[8]byte],
	16: inspectWith[[16]byte],
	24: inspectWith[[24]byte],
	25: inspectWith[[25]byte],
	32: inspectWith[[32]byte],
	64: inspectWith[[64]byte],
}

func runInspect(cmd *cobra.Command, args []string) error {
	threshold := inspectThreshold
	if threshold == 0 {
		threshold = appConfig.Inspect.Threshold
	}

	inspect, ok := inspectors[threshold]
	if !ok {
		err := fmt.Errorf("unsupported threshold %d (supported: %s)", threshold, joinThresholds())
		printError(cmd, "inspect", err)
		return err
	}

	texts := args
	if len(texts) == 0 {
		texts = appConfig.Inspect.Texts
	}
	if len(texts) == 0 {
		err := errors.New("no texts given and none configured")
		printError(cmd, "inspect", err)
		return err
	}

	timer := appLogger.StartTimer("inspect").WithField("threshold", threshold)

	rows := make([][]string, 0, len(texts))
	for _, text := range texts {
		res, err := inspect(text)
		if err != nil {
			timer.StopWithError(err)
			printError(cmd, "inspect", err)
			return err
		}
		mode := res.Mode.String()
		rows = append(rows, []string{
			strconv.Quote(res.Text),
			modeStyle(mode).Render(mode),
			strconv.Itoa(res.Size),
			strconv.Itoa(res.Cap),
			res.View,
		})
	}
	timer.WithField("texts", len(texts)).Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("smallstr inspect (N = %d)", threshold)))
	fmt.Fprint(out, renderTable([]string{"TEXT", "MODE", "SIZE", "CAP", "VIEW"}, rows))
	return nil
}

func joinThresholds() string {
	thresholds := slices.Clone(config.SupportedThresholds)
	slices.Sort(thresholds)
	s := ""
	for i, n := range thresholds {
		if i > 0 {
			s += ", "
		}
		s += strconv.Itoa(n)
	}
	return s
}
