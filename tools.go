// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// tools.go - Pins development tools in go.mod. Run `go run golang.org/x/tools/cmd/godoc`
// to browse the package docs locally.

//go:build tools

package tools

import (
	_ "golang.org/x/tools/cmd/godoc"
)
