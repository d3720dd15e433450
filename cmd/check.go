package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hellodexcom/greeter/current"
	"github.com/hellodexcom/greeter/healthcheck"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a running server responds with the greeting",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("check_address", cmd.Flags().Lookup("address"))
		viper.BindPFlag("check_timeout", cmd.Flags().Lookup("timeout"))

		log := newLogger()
		current.SetLogger(&log)

		ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("check_timeout"))
		defer cancel()

		check := &healthcheck.Check{Address: viper.GetString("check_address")}
		body, err := check.Run(ctx)
		if err != nil {
			cancel()
			current.Logger(ctx).Fatal().Err(err).Str("address", check.Address).Msg("health check failed")
		}

		fmt.Print(body)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("address", "127.0.0.1:5000", "Address of the server to check")
	checkCmd.Flags().Duration("timeout", 5*time.Second, "Maximum time to wait for the server")
}
