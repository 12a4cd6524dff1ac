package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/bitbank/pkg/cmd/cmdutil"
)

const dotenvFile = ".env.local"

// logHook is installed at most once per process
var logHook log.Hook

var RootCmd = &cobra.Command{
	Use:   "bitbank",
	Short: "bitbank exchange api client",
	Long:  "query market data, manage orders and request withdrawals on bitbank.cc",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("log-file", "", "also write the logs to this file in json")
	RootCmd.PersistentFlags().Int("log-max-size", 100, "rotate the log file after it reaches this size in megabytes")

	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func setupLogging() error {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	if logFile := viper.GetString("log-file"); len(logFile) > 0 && logHook == nil {
		writer := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    viper.GetInt("log-max-size"),
			MaxBackups: 7,
			Compress:   true,
		}

		logHook = lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		)
		logger.AddHook(logHook)
	}

	return nil
}

func Execute() {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Fatalf("error loading dotenv file %s", dotenvFile)
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		log.WithError(err).Fatalf("cannot execute command")
	}
}
