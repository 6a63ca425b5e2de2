// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files via github.com/go-audio/aiff.
//
// Only 16-bit PCM AIFF data is supported.
package aiff
