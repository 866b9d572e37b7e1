package main

import (
	"errors"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "cfgp",
	Short:         "Context-free grammar derivations",
	Long:          "cfgp checks whether input strings derive from a context-free grammar and shows derivation steps and trees.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configFile string

// Global trace levels of schuko, which are not used by cfgp.
var silencedTracers = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default: ./cfgp.yaml)")
	rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().Bool("allow-prefix", false, "Accept input if a prefix of it derives from the start symbol")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Maximum recursion depth of a derivation (0 = unbounded)")
	rootCmd.PersistentFlags().Bool("guard-left-recursion", false, "Cut re-entry of a non-terminal at the same input position")

	_ = viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("derive.allow-prefix", rootCmd.PersistentFlags().Lookup("allow-prefix"))
	_ = viper.BindPFlag("derive.max-depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag("derive.guard-left-recursion", rootCmd.PersistentFlags().Lookup("guard-left-recursion"))
}

func initConfig() {
	viper.SetEnvPrefix("CFGP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("cfgp")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/cfgp")
	}
	configErr := viper.ReadInConfig()
	for _, key := range silencedTracers {
		viper.SetDefault(key, "Error")
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(viperadapter.New("cfgp"))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(viper.GetString("trace")))
	var notFound viper.ConfigFileNotFoundError
	if configErr != nil && !errors.As(configErr, &notFound) {
		tracer().Errorf("cannot read configuration: %v", configErr)
	} else if configErr == nil {
		tracer().Infof("configuration read from %s", viper.ConfigFileUsed())
	}
	tracer().Debugf("trace level is %s", viper.GetString("trace"))
}
