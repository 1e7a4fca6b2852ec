// Command paginate pages through and searches item collections.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/paginate/internal/cli"
	"github.com/rshade/paginate/pkg/version"
)

func run(args []string) error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	return root.Execute()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
