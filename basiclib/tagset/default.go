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

package tagset

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/default_tagset.ini
var defaultTagsetINI []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog built from the embedded default tagset,
// giving callers a zero-configuration Catalog covering every category and
// subcategory the tagger consults. It is parsed once and shared; the
// Catalog it returns is read-only and safe for concurrent use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(defaultTagsetINI))
		if defaultErr != nil {
			defaultErr = fmt.Errorf("loading embedded default tagset: %w", defaultErr)
		}
	})
	return defaultCat, defaultErr
}
