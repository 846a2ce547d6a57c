package main

import (
	"fmt"
	"os"

	"github.com/function61/gokit/app/dynversion"
	"github.com/spf13/cobra"
)

func main() {
	app := &cobra.Command{
		Use:     os.Args[0],
		Short:   "Generate Gravatar image URLs for email addresses",
		Version: dynversion.Version,
	}

	app.AddCommand(urlEntry())
	app.AddCommand(hashEntry())

	exitIfError(app.Execute())
}

func exitIfError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
