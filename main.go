package main

import (
	"context"
	"encoding/json"
	"fmt"
	"houseprojects/analytics"
	"houseprojects/common"
	"houseprojects/config"
	"houseprojects/display"
	"houseprojects/idgen"
	"houseprojects/infra/tracing"
	"houseprojects/mirror"
	"houseprojects/persistence"
	"houseprojects/servehttp"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "houseprojects",
	Short:        "Household project tracker with a live display board",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API and the display push channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print the analytics overview of the data directory as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		defer persistence.ActiveFileStore.Stop()

		overview, err := analytics.QueryOverview()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(overview, "", "  ")
		if err != nil {
			return err
		}
		logrus.Debugf("overview computed from %s", cfg.Storage.DataDir)
		fmt.Println(string(out))
		return nil
	},
}

var mirrorURL string

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Render the display board in the terminal from a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		url := mirrorURL
		if url == "" {
			url = "ws://localhost" + cfg.Server.Address + cfg.Server.BasePath + display.PathDisplay + "/ws"
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return mirror.Run(ctx, mirror.Options{
			URL:      url,
			Interval: cfg.Display.UpdateInterval.Duration,
			Title:    cfg.Display.Title,
			Out:      os.Stdout,
			Clear:    true,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path of the toml config file")
	mirrorCmd.Flags().StringVar(&mirrorURL, "url", "", "websocket url of the display channel")

	rootCmd.AddCommand(serveCmd, overviewCmd, mirrorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, configures logging and id generation, and opens the file store.
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := common.ConfigureLogging(cfg.Log); err != nil {
		return nil, err
	}
	idgen.MachineID = cfg.IDGen.MachineID

	store := persistence.NewFileStore(cfg.Storage.DataDir)
	if err := store.Start(); err != nil {
		return nil, err
	}
	persistence.ActiveFileStore = store
	return cfg, nil
}

func serve() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer persistence.ActiveFileStore.Stop()
	logrus.Info("service start")

	if cfg.Tracing.Enabled {
		closer, err := tracing.InitGlobalTracer(cfg.Tracing.ServiceName)
		if err != nil {
			return err
		}
		defer closer.Close()
	}

	hub := display.NewHub(display.HubOptions{
		ClientTTL:       cfg.Display.ClientTTL.Duration,
		RefreshInterval: cfg.Display.RefreshInterval.Duration,
		WriteTimeout:    display.DefaultHubOptions().WriteTimeout,
		PingInterval:    display.DefaultHubOptions().PingInterval,
	})
	defer hub.Close()

	engine := servehttp.NewEngine(cfg.Server.BasePath, hub)
	return servehttp.StartHTTPServer(engine, cfg.Server.Address, cfg.Server.ShutdownTimeout.Duration)
}
