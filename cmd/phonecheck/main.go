package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/andestack/contactline/internal/phone"
)

func main() {
	inputs := os.Args[1:]
	if len(inputs) == 0 {
		// No arguments: read one number per line from stdin
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
			os.Exit(1)
		}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: phonecheck <number> [<number>...]")
		fmt.Fprintln(os.Stderr, "       echo '11 4344 3600' | phonecheck")
		os.Exit(2)
	}

	failed := false
	for _, raw := range inputs {
		canonical, err := phone.Normalize(raw)
		if err != nil {
			fmt.Printf("%-24s  error: %v\n", raw, err)
			failed = true
			continue
		}
		fmt.Printf("%-24s  %s\n", raw, canonical)
	}
	if failed {
		os.Exit(1)
	}
}
