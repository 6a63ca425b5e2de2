// SPDX-License-Identifier: EPL-2.0

package render

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier used to namespace every element id of
// one rendered player.  Each render call gets its own, so two players in
// the same document never collide.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
