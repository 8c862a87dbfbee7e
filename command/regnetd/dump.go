// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/storage"
)

const dumpBatchSize = 100

type dumpLine struct {
	Key   compositekey.Key `json:"key"`
	Value json.RawMessage  `json:"value"`
}

// write every record of a pool as one JSON object per line
func dumpPool(pool *storage.PoolHandle, w io.Writer) (int, error) {
	encoder := json.NewEncoder(w)
	cursor := pool.NewFetchCursor()

	n := 0
	for {
		elements, err := cursor.Fetch(dumpBatchSize)
		if nil != err {
			return n, err
		}
		if 0 == len(elements) {
			return n, nil
		}

		for _, e := range elements {
			err := encoder.Encode(dumpLine{
				Key:   e.Key,
				Value: json.RawMessage(e.Value),
			})
			if nil != err {
				return n, err
			}
			n += 1
		}
	}
}
