//go:build tools
// +build tools

// Tool dependencies tracked in go.mod so `go generate` can run mockgen on a
// fresh checkout.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
