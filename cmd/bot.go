package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dima111000/shedule-zsm-1/pkg/bot"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Long: `Start the webhook server and answer schedule queries over Telegram.
Configuration comes from the environment: BOT_TOKEN, WEBHOOK_URL, PORT
(default 8080), ITEMS_PER_PAGE (default 5) and CACHE_FILE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")

		var logger *zap.Logger
		var err error
		if debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := bot.ConfigFromEnv()
		if err != nil {
			return err
		}

		b, err := bot.New(cfg, logger)
		if err != nil {
			return err
		}

		return b.Run()
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.Flags().Bool("debug", false, "Verbose development logging")
}
