// Package all links every command set into the shell.
package all

import (
	_ "github.com/robotalks/tiva.go/pkg/cli/cmds/board"
)
