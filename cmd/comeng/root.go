package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/comeng/internal/logging"
	"github.com/martinemde/comeng/sitac"
)

var rootCmd = &cobra.Command{
	Use:          "comeng",
	Short:        "SITAC to KML converter",
	Long:         "comeng converts SITAC tactical-map exports (XML) into KML documents for mapping tools.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("syntax", "s", sitac.DialectNTK, "Input dialect (ntk, melissa)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./comeng.yaml)")

	_ = viper.BindPFlag("syntax", rootCmd.PersistentFlags().Lookup("syntax"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.SetConfigName("comeng")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/comeng")
	}

	// COMENG_LOG_LEVEL -> log_level
	viper.SetEnvPrefix("COMENG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && viper.GetString("config") != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
	}
}

// newLogger builds the base logger from the flags. Packages that receive it
// add their own component attribute.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := viper.GetString("log_level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	return logging.New(level, viper.GetString("log_format"), cmd.ErrOrStderr())
}

// document is a decoded input file.
type document struct {
	Name        string // first <name> in the file
	Figures     []sitac.Figure
	Diagnostics []sitac.Diagnostic
}

// loadDocument reads and decodes path. Figures that fail to decode end up in
// Diagnostics; an unreadable file or an unsupported dialect is an error.
func loadDocument(path, dialect string, logger *slog.Logger) (*document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SITAC file: %w", err)
	}

	lex := sitac.NewLexer(src, dialect, logger)
	if err := lex.Err(); err != nil {
		return nil, err
	}
	p := sitac.NewParser(lex.Tokenize(), dialect, logger)
	figs := p.ParseFigures()

	return &document{
		Name:        p.Name(),
		Figures:     figs,
		Diagnostics: p.Diagnostics(),
	}, nil
}
