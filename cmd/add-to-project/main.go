// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-19

// Package main is the entry point for the add-to-project CLI.
package main

import (
	"github.com/similigh/add-to-project/cmd/add-to-project/commands"
)

func main() {
	commands.Execute()
}
