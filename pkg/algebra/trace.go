// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package algebra

import "github.com/sirupsen/logrus"

// Tracer receives diagnostic breadcrumbs from analyze, which Analyze and the
// C3 passes all run.
// Library callers that don't care about tracing use NopTracer; callers
// embedding this in a CLI or service wire a LogrusTracer instead.
type Tracer interface {
	Tracef(format string, args ...any)
}

// NopTracer discards everything. It is the zero-cost default so that
// analyze never has to nil-check its tracer.
type NopTracer struct{}

func (NopTracer) Tracef(string, ...any) {}

// LogrusTracer forwards to a *logrus.Logger at debug level.
type LogrusTracer struct {
	Log *logrus.Logger
}

// NewLogrusTracer wraps a logger, defaulting to logrus.StandardLogger when
// none is given.
func NewLogrusTracer(log *logrus.Logger) LogrusTracer {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return LogrusTracer{Log: log}
}

func (t LogrusTracer) Tracef(format string, args ...any) {
	t.Log.Debugf(format, args...)
}
