package service

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

var osExit = os.Exit

// HandleCommand handles note service subcommands and returns an exit code.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		printServiceHelp()
		osExit(1)
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		RunAppServer(args[1:])
		return 0
	case "init":
		initDb()
		return 0
	case "clean":
		clean()
		return 0
	case "help":
		printServiceHelp()
		return 0
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		printServiceHelp()
		osExit(1)
		return 1
	}
}

// printServiceHelp prints help for the service subcommands.
func printServiceHelp() {
	helpText := `Usage: noteboard <command>

Commands:
  serve    Run the note service (web views and GraphQL API)
  init     Initialize a new empty embedded database
  clean    Remove the embedded database
  help     Display this help message

Set DATABASE_URL to use Postgres instead of the embedded store.
`
	fmt.Println(helpText)
}

// initDb initializes a new empty embedded database.
func initDb() {
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		fmt.Printf("Failed to create database directory: %v\n", err)
		return
	}

	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// clean removes the embedded database.
func clean() {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return
	}
	fmt.Println("Database cleaned successfully")
}
