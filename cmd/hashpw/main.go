// Command hashpw hashes an admin password for use in config.toml.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arganshop/backend/internal/infrastructure/auth"
)

func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read password: %v\n", err)
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		fmt.Fprintln(os.Stderr, "Password must not be empty")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
