// Command credgen writes the YAML credential store the server verifies
// logins against. The single account never lives in the database.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/fatih/color"

	"vitale/internal/cli"
	"vitale/internal/credentials"
)

func main() {
	options := cli.GenerateOptions{Stdin: os.Stdin}
	flag.StringVar(&options.OutPath, "out", "credentials.yaml", "path of the credential store to write")
	flag.StringVar(&options.Username, "username", "", "account username (required)")
	flag.StringVar(&options.DisplayName, "display-name", "", "name shown in the dashboard greeting, defaults to the username")
	flag.StringVar(&options.PasswordFile, "password-file", "", "read the password from the first line of this file instead of prompting")
	flag.BoolVar(&options.Random, "random", false, "generate a strong random password and print it once")
	flag.IntVar(&options.SessionDays, "session-days", 30, "how many days a login session stays valid")
	flag.BoolVar(&options.Force, "force", false, "replace an existing store")
	flag.Parse()

	result, err := cli.RunGenerateCommand(options)
	if err != nil {
		if errors.Is(err, credentials.ErrStoreExists) {
			color.Red("[ERROR] %s already exists, pass -force to replace it", options.OutPath)
			os.Exit(1)
		}
		color.Red("[ERROR] %s", err)
		os.Exit(1)
	}

	color.Green("[OK] credential store for %s written to %s", result.Username, result.Path)
	if result.GeneratedPassword != "" {
		color.Yellow("[INFO] generated password: %s", result.GeneratedPassword)
		color.Yellow("[INFO] save it now, the store only keeps the hash")
	}
}
