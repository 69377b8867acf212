package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sslog "github.com/msto63/smallstring/foundation/core/log"
	"github.com/msto63/smallstring/pkg/bufpool"
	"github.com/msto63/smallstring/pkg/core/config"
	"github.com/msto63/smallstring/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLogger *sslog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sso",
	Short: "smallstring - small string optimization toolkit",
	Long: `sso drives the smallstr package: strings that keep short contents
inline and move longer contents to an owned pool buffer.

Commands:
  demo     - replay the reference construction, copy and move scenarios
  inspect  - show storage mode, size and view for given texts
  stats    - run a workload and report buffer pool statistics
  check    - run self checks against the ownership invariants
  version  - show version information`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $SSO_CONFIG or ./configs/sso.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration, installs the run logger and the buffer pool
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		printError(cmd, "loading config", err)
		return err
	}

	lc := logging.FromConfig("sso", appConfig)
	if verbose {
		lc.Level = "debug"
	}
	lc.Output = cmd.ErrOrStderr()

	logger, err := logging.NewLogger(lc)
	if err != nil {
		printError(cmd, "creating logger", err)
		return err
	}
	appLogger = logger.WithCorrelationID(uuid.NewString())
	sslog.SetDefault(appLogger)

	bufpool.SetDefault(bufpool.New(bufpool.Config{
		MinClass: appConfig.Pool.MinClass,
		MaxClass: appConfig.Pool.MaxClass,
		Logger:   appLogger.WithName("bufpool"),
	}))

	appLogger.Debug("configuration loaded", sslog.Fields{
		"command":   cmd.Name(),
		"threshold": appConfig.Inspect.Threshold,
		"min_class": appConfig.Pool.MinClass,
		"max_class": appConfig.Pool.MaxClass,
	})
	return nil
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", errorStyle.Render("error:"), msg, err)
}

