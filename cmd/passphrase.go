package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"
)

// zeroBytes overwrites a byte slice with zeros
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// getPassphrase resolves the passphrase from the environment or, failing
// that, from an interactive prompt
func getPassphrase(prompt string) ([]byte, error) {
	if envPass := os.Getenv(passphraseEnvVar); envPass != "" {
		return []byte(envPass), nil
	}

	return readPassword(prompt)
}

// getPassphraseWithConfirm reads the passphrase twice and requires both
// entries to match; the environment variable skips the confirmation
func getPassphraseWithConfirm(prompt, confirmPrompt string) ([]byte, error) {
	if envPass := os.Getenv(passphraseEnvVar); envPass != "" {
		return []byte(envPass), nil
	}

	passphrase, err := readPassword(prompt)
	if err != nil {
		return nil, err
	}

	confirm, err := readPassword(confirmPrompt)
	if err != nil {
		zeroBytes(passphrase)
		return nil, err
	}

	if !bytes.Equal(passphrase, confirm) {
		zeroBytes(passphrase)
		zeroBytes(confirm)
		return nil, fmt.Errorf("passphrases do not match")
	}

	zeroBytes(confirm)
	return passphrase, nil
}

// readPassword prompts on stderr and reads without echo. When stdin is piped
// it falls back to the controlling terminal.
func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		passphrase, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		return passphrase, err
	}

	// STDIN is piped; try the controlling terminal instead
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("cannot prompt for passphrase: stdin is piped and /dev/tty is not available; set %s instead", passphraseEnvVar)
	}
	defer tty.Close()

	passphrase, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	return passphrase, err
}
