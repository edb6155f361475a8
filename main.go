package main

import (
	"fmt"
	"os"

	"github.com/clanwatch/clanwatch/cmd"
	"github.com/clanwatch/clanwatch/internal/app"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, app.OperatorMessage(err))
	os.Exit(app.ExitCode(err))
}
