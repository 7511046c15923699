// Package assets embeds the static content shipped with the binary.
package assets

import "embed"

// Text holds the proposal script.
//
//go:embed text/*.json
var Text embed.FS
