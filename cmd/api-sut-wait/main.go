/*
Copyright 2025 the Unikorn Authors.
Copyright 2026 Nscale.

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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/api-sut/pkg/constants"
	"github.com/unikorn-cloud/api-sut/pkg/readiness"
	"github.com/unikorn-cloud/api-sut/test/api"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

func main() {
	// The environment and any .env file provide the defaults, flags win.
	config, err := api.LoadTestConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var options readiness.Options

	options.AddFlags(pflag.CommandLine)

	pflag.StringVar(&config.BaseURL, "base-url", config.BaseURL, "API-SUT base URL to probe.")
	pflag.DurationVar(&config.RequestTimeout, "request-timeout", config.RequestTimeout, "Timeout for a single health probe.")

	zapOptions := zap.Options{}

	goflags := flag.NewFlagSet("logging", flag.ExitOnError)
	zapOptions.BindFlags(goflags)
	pflag.CommandLine.AddGoFlagSet(goflags)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("waiting for service", "application", constants.Application, "version", constants.Version, "revision", constants.Revision, "url", config.BaseURL)

	if err := config.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("readiness"))

	client := api.NewAPIClient(config)
	defer client.Close()

	probe := func(ctx context.Context) error {
		_, err := client.Health(ctx)
		return err
	}

	if err := readiness.Wait(ctx, &options, probe); err != nil {
		logger.Error(err, "service did not become ready")
		client.Close()
		os.Exit(1) //nolint:gocritic
	}
}
