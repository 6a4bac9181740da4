package main

import (
	"context"
	"fmt"
	"runtime/debug"
)

// VersionCmd displays widetext-print version information.
type VersionCmd struct{}

// Run executes the widetext version command.
func (cmd VersionCmd) Run(ctx context.Context) error {
	version := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("widetext-print %s\n", version)
	return nil
}
