package main

import (
	"fmt"
	"os"

	"github.com/f3rmion/elgamal-bn/cmd/elgamal-bn/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
