package main

import (
	"fmt"
	"os"
	"strings"

	"noteboard/service"
)

const cliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the CLI command. It is separate from main so tests
// can run it with a stubbed exit.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("noteboard version %s\n", cliVersion)
	case "serve", "init", "clean":
		service.HandleCommand(os.Args[1:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: noteboard <command>

Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the note service (web views and GraphQL API on :8080).
  init       Initialize a new empty embedded database.
  clean      Remove the embedded database.

Set DATABASE_URL to use Postgres instead of the embedded store, and ADDR
to change the listen address.
`
	fmt.Println(helpText)
}
