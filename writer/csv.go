// Copyright 2019 The Kythe Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package writer holds the external, corpus-analysis-facing serializers for
// a decoded file's tabular token view (basicfile.Row): the one per-file
// sink the core packages deliberately stay agnostic of.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kythe/c64basic/basiclib/basicfile"
)

// TableHeader names the columns WriteTable emits, in order.
var TableHeader = []string{"line", "token_id", "bytes", "token", "tag", "language"}

// WriteTable renders rows as CSV, one record per token. A file-name column
// is the batch driver's concern (cmd/bastable), not this package's, since
// a single table write never knows which file it belongs to.
func WriteTable(w io.Writer, rows []basicfile.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableHeader); err != nil {
		return fmt.Errorf("writer: writing header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			fmt.Sprintf("%d", r.Line),
			fmt.Sprintf("%d", r.TokenID),
			r.Bytes,
			r.Text,
			r.Tag,
			r.Language.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writer: writing row %d/%d: %w", r.Line, r.TokenID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
