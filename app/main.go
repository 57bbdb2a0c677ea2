package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/viper"

	"github.com/osmosis-labs/swapquery/domain"
	swaplog "github.com/osmosis-labs/swapquery/log"
)

// @title           Swap Query Server API
// @version         1.0
func main() {
	configPath := flag.String("config", "config.json", "config file location")

	hostName := flag.String("host", "swapquery", "the name of the host")

	isDebug := flag.Bool("debug", false, "debug mode")

	// Parse the command-line arguments
	flag.Parse()

	if *isDebug {
		log.Println("Service RUN on DEBUG mode")
	}

	fmt.Println("configPath", *configPath)
	fmt.Println("hostName", *hostName)

	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	// Unmarshal the config into your Config struct
	var config domain.Config
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println("Error unmarshalling config:", err)
		return
	}
	config = applyDefaults(config)

	// Handle SIGINT and SIGTERM signals to initiate shutdown
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		if err := recover(); err != nil {
			log.Println(err)
			exitChan <- syscall.SIGTERM
		}
	}()

	if config.OTEL.DSN != "" {
		if err := initSentry(config.OTEL, *hostName, *isDebug); err != nil {
			log.Fatal(err)
		}
		defer sentry.Flush(2 * time.Second)

		sentry.CaptureMessage("swap query server started")
	}

	// logger
	logger, err := swaplog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		panic(fmt.Errorf("error while creating logger: %s", err))
	}
	logger.Info("Starting swap query server")

	// Use context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	swapQueryServer, err := NewSwapQueryServer(ctx, config, logger)
	if err != nil {
		panic(err)
	}

	go func() {
		<-exitChan
		cancel() // Trigger shutdown

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		err := swapQueryServer.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}

		os.Exit(0)
	}()

	if err := swapQueryServer.Start(ctx); err != nil {
		panic(err)
	}
}
