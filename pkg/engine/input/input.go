// Package input provides terminal keyboard input for interactive CLI tools.
package input

import (
	"log"
	"os"

	"golang.org/x/term"
)

// GetKey reads a single keypress in raw mode and returns it as a lowercase
// string. Ctrl+C exits the process.
func GetKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}

	b := buf[0]
	if b == 3 { // Ctrl+C
		term.Restore(int(os.Stdin.Fd()), oldState)
		os.Exit(0)
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if b < 32 || b > 126 {
		return ""
	}
	return string(b)
}
