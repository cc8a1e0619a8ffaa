// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlset/fault"
)

var (
	ErrRequiredFileName = fault.InvalidError("file name is required")
	ErrRequiredValues   = fault.InvalidError("values are required")
	ErrPositiveCount    = fault.InvalidError("count must be positive")
	ErrPositiveRange    = fault.InvalidError("range must be positive")
)
