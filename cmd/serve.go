package cmd

import (
	"github.com/hellodexcom/greeter/current"
	"github.com/hellodexcom/greeter/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start web server",
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		current.SetLogger(&log)

		err := server.Serve(&server.Config{
			ListenAddress: viper.GetString("http_service_address"),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("http-service-address", "a", server.DefaultListenAddress, "HTTP service address")
	viper.BindPFlag("http_service_address", serveCmd.Flags().Lookup("http-service-address"))
}
