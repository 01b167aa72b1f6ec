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

// Package readiness blocks until a service answers its health probe, so
// test runs can be gated on a freshly started service.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"k8s.io/apimachinery/pkg/util/wait"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrNotReady       = errors.New("service not ready")
	ErrInvalidOptions = errors.New("invalid readiness options")
)

// ProbeFunc returns nil once the service is ready.
type ProbeFunc func(ctx context.Context) error

// Options control how long and how often to probe.
type Options struct {
	// Timeout is the overall deadline.
	Timeout time.Duration
	// Interval is the delay between probes.
	Interval time.Duration
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.DurationVar(&o.Timeout, "timeout", time.Minute, "How long to wait for the service to become ready.")
	f.DurationVar(&o.Interval, "interval", time.Second, "How long to wait between health probes.")
}

// Validate checks the options describe a finite poll.
func (o *Options) Validate() error {
	if o.Timeout <= 0 {
		return fmt.Errorf("%w: timeout %s must be positive", ErrInvalidOptions, o.Timeout)
	}

	if o.Interval <= 0 {
		return fmt.Errorf("%w: interval %s must be positive", ErrInvalidOptions, o.Interval)
	}

	return nil
}

// Wait probes immediately, then every interval, until the probe succeeds or
// the timeout expires. The returned error wraps ErrNotReady and the last
// probe failure.
func Wait(ctx context.Context, options *Options, probe ProbeFunc) error {
	if err := options.Validate(); err != nil {
		return err
	}

	log := log.FromContext(ctx)

	var (
		attempts int
		last     error
	)

	condition := func(ctx context.Context) (bool, error) {
		attempts++

		if err := probe(ctx); err != nil {
			last = err

			log.V(1).Info("service not ready", "attempt", attempts, "error", err)

			return false, nil
		}

		return true, nil
	}

	if err := wait.PollUntilContextTimeout(ctx, options.Interval, options.Timeout, true, condition); err != nil {
		if last == nil {
			last = err
		}

		return fmt.Errorf("%w after %d attempts: %w", ErrNotReady, attempts, last)
	}

	log.Info("service ready", "attempts", attempts)

	return nil
}
