package main

import (
	"os"

	"github.com/eth-fabric/portsync/cmd"
	"github.com/eth-fabric/portsync/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
