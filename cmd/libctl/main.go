package main

import (
	"fmt"
	stdLog "log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/liris-lib/library-service/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", err)
	}
	cfg := config.NewConfig(config.WithLogLevel(zapcore.WarnLevel))

	root := &cobra.Command{
		Use:           "libctl",
		Short:         "Library database administration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newInitCmd(cfg),
		newStatsCmd(cfg),
		newOverdueCmd(cfg),
		newTestBorrowCmd(cfg),
		newReturnCmd(cfg),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
