// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrMissingDependency is returned by NewApp when a required dependency is
// nil.
var ErrMissingDependency = errors.New("missing client dependency")
