package main

import (
	"fmt"
	"sort"

	// Packages
	version "github.com/mckinsey/ark-go/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCmd) Run(ctx *Globals) error {
	metadata := version.Map(execName())
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%-12s %s\n", key, metadata[key])
	}
	return nil
}
