/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/pereweb/internal/contact"
	"github.com/valpere/pereweb/internal/detector"
	"github.com/valpere/pereweb/internal/server"
	"github.com/valpere/pereweb/internal/store"
	"github.com/valpere/pereweb/internal/translator"
)

var cfgFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the translation web server",
	Long: `Start the web server.

Available services (tried in the given order until one succeeds):
  - google      Google Translate (requires credentials)
  - systran     Systran Translate (requires API key)
  - mymemory    MyMemory (free, 5000 chars/day)
  - demo        Offline phrasebook, no credentials needed

Configuration is read from flags, PEREWEB_* environment variables, and an
optional pereweb.yaml config file, in that order of precedence.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[pereweb] ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, cleanup, err := buildServices(ctx,
		viper.GetStringSlice("services"),
		viper.GetString("credentials"),
		viper.GetString("systran-key"),
		viper.GetString("mymemory-email"))
	if err != nil {
		return err
	}
	defer cleanup()

	for _, svc := range services {
		if err := svc.IsAvailable(ctx); err != nil {
			logger.Printf("service %s not available: %v", svc.Name(), err)
		}
	}

	var delegate translator.TranslationService
	if len(services) == 1 {
		delegate = services[0]
	} else {
		delegate = translator.NewFallback(services...)
	}

	var saver contact.Saver
	if dbPath := viper.GetString("db"); dbPath != "" {
		db, err := store.New(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		saver = db
		logger.Printf("persisting contact messages to %s", dbPath)
	}

	srv, err := server.New(server.Config{
		Addr:          viper.GetString("addr"),
		DefaultTarget: viper.GetString("default-target"),
		Timeout:       viper.GetDuration("timeout"),
	}, delegate, detector.New(), contact.NewRecorder(logger, saver), logger)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

func loadConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pereweb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pereweb")
	}

	viper.SetEnvPrefix("PEREWEB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&cfgFile, "config", "", "Config file (default ./pereweb.yaml)")
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().StringSlice("services", []string{"demo"}, "Translation services in fallback order (comma-separated)")
	serveCmd.Flags().String("credentials", "", "Path to Google Cloud credentials")
	serveCmd.Flags().String("systran-key", "", "Systran API key")
	serveCmd.Flags().String("mymemory-email", "", "MyMemory email (for higher limits)")
	serveCmd.Flags().String("default-target", "en", "Default target language code")
	serveCmd.Flags().Duration("timeout", 30*time.Second, "Upstream translation timeout")
	serveCmd.Flags().String("db", "", "SQLite path for contact messages (empty = log only)")

	for _, name := range []string{"addr", "services", "credentials", "systran-key", "mymemory-email", "default-target", "timeout", "db"} {
		_ = viper.BindPFlag(name, serveCmd.Flags().Lookup(name))
	}
}
