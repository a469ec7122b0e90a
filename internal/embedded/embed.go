// Package embedded carries data files compiled into the binary.
package embedded

import (
	_ "embed"
)

// AliasesYAML is the built-in country alias table.
//
//go:embed aliases.yaml
var AliasesYAML []byte
