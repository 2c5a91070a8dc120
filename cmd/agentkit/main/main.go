package main

import (
	"os"

	"github.com/arthur-debert/agentkit/cmd/agentkit"
)

func main() {
	os.Exit(agentkit.Execute(agentkit.NewRootCmd()))
}
