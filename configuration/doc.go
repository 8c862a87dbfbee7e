// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// end by returning a table, for example:
//
//   local M = {}
//   M.data_directory = arg[0]:match("(.*/)")
//   M.chain = os.getenv("REGNET_CHAIN") or "local"
//   return M
package configuration
