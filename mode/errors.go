/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mode

import "errors"

// Sentinel errors for mode data.
var (
	// ErrUnknownCategory indicates a category label outside the known set.
	ErrUnknownCategory = errors.New("unknown category")
)
