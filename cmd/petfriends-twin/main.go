/*
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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/nscaledev/petfriends-e2e/pkg/log"
	"github.com/nscaledev/petfriends-e2e/pkg/twin"
)

type options struct {
	port     int
	email    string
	password string
	seedFile string
	verbose  bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.IntVar(&o.port, "port", 8080, "Port to listen on.")
	f.StringVar(&o.email, "email", "qa@petfriends.test", "Email of the primary account.")
	f.StringVar(&o.password, "password", "petfriends-qa", "Password of the primary account.")
	f.StringVar(&o.seedFile, "seed-file", "", "JSON state snapshot to load instead of the default seed data.")
	f.BoolVar(&o.verbose, "verbose", false, "Log every request.")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup, including the
// logger flush, happens before exit.
func run(args []string) int {
	var o options

	flags := pflag.NewFlagSet("petfriends-twin", pflag.ContinueOnError)

	o.AddFlags(flags)

	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger, sync, err := log.New(o.verbose)
	if err != nil {
		fmt.Println(err)
		return 1
	}

	defer func() {
		_ = sync()
	}()

	logger.WithName("init").Info("service starting", "application", "petfriends-twin", "port", o.port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := twin.New(ctx, twin.Options{
		Email:    o.email,
		Password: o.password,
		SeedFile: o.seedFile,
		Logger:   logger.WithName("twin"),
	})
	if err != nil {
		logger.Error(err, "twin setup failed")
		return 1
	}

	if err := t.Serve(ctx, fmt.Sprintf(":%d", o.port)); err != nil {
		logger.Error(err, "twin exited")
		return 1
	}

	return 0
}
