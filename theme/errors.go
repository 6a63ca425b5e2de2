// SPDX-License-Identifier: EPL-2.0

package theme

import "errors"

var (
	ErrUnknownTheme = errors.New("unknown theme")
)
