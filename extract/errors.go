/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import "errors"

// ErrUnknownDecodePolicy indicates an unrecognized decode policy name.
var ErrUnknownDecodePolicy = errors.New("unknown decode policy")
