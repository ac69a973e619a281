// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/kycledger/background"
	"github.com/bitmark-inc/kycledger/configuration"
	"github.com/bitmark-inc/kycledger/counter"
	"github.com/bitmark-inc/kycledger/rpc/certificate"
	"github.com/bitmark-inc/kycledger/rpc/listeners"
	"github.com/bitmark-inc/kycledger/rpc/metrics"
	"github.com/bitmark-inc/kycledger/rpc/ratelimit"
	"github.com/bitmark-inc/kycledger/rpc/server"
	"github.com/bitmark-inc/kycledger/storage"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Metrics", theConfiguration.Metrics)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments) {
		return
	}

	// client RPC
	rpcLog := logger.New(listeners.LogName)

	tlsConfig, fingerprint, err := certificate.Load(
		rpcLog,
		listeners.LogName,
		theConfiguration.ClientRPC.Certificate,
		theConfiguration.ClientRPC.PrivateKey,
	)
	if nil != err {
		log.Criticalf("rpc certificate error: %s", err)
		exitwithstatus.Message("rpc certificate error: %s", err)
	}

	limiter := ratelimit.New(theConfiguration.RateLimit)
	rpcCount := counter.New(metrics.OpenConnections)
	rpcServer := server.Create(logger.New("assets"), version, limiter, rpcCount, storage.Begin)

	rpcListener, err := listeners.NewRPC(
		&theConfiguration.ClientRPC,
		rpcLog,
		rpcCount,
		rpcServer,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	if err = rpcListener.Serve(); nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}
	defer rpcListener.Stop()

	// optional metrics endpoint
	metricsListener, err := listeners.NewHTTP(
		&theConfiguration.Metrics,
		logger.New("metrics"),
		"/metrics",
		metrics.Handler(),
	)
	if nil != err {
		log.Criticalf("metrics initialise error: %s", err)
		exitwithstatus.Message("metrics initialise error: %s", err)
	}
	if nil != metricsListener {
		if err = metricsListener.Serve(); nil != err {
			log.Criticalf("metrics serve error: %s", err)
			exitwithstatus.Message("metrics serve error: %s", err)
		}
		defer metricsListener.Stop()
	}

	// reload limits when the configuration changes
	watcher, err := configuration.NewWatcher(configurationFile, logger.New("config"))
	if nil != err {
		log.Criticalf("configuration watcher error: %s", err)
		exitwithstatus.Message("configuration watcher error: %s", err)
	}
	if err = watcher.Start(); nil != err {
		log.Criticalf("configuration watcher start error: %s", err)
		exitwithstatus.Message("configuration watcher start error: %s", err)
	}
	defer watcher.Stop()

	processes := background.Start(&reloader{
		log:               logger.New("config"),
		configurationFile: configurationFile,
		watcher:           watcher,
		limiter:           limiter,
	})
	defer processes.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}
}
