// Package all registers all shell commands.
package all

import (
	// commands register themselves in init.
	_ "github.com/robotalks/lumen.go/pkg/cli/cmds/pack"
	_ "github.com/robotalks/lumen.go/pkg/cli/cmds/pixel"
)
