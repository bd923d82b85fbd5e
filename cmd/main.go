package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/tokenvoting/cmd/tokenvoting"
)

func main() {
	rootCmd := tokenvoting.BuildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
