package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/enctools/wordcrypt"
)

const (
	// passphraseEnvVar names the environment variable consulted before any
	// interactive passphrase prompt.
	passphraseEnvVar = "WORDCRYPT_PASSPHRASE"
)

// cmdConfig holds command line arguments
type cmdConfig struct {
	operation  string // "encrypt" or "decrypt"
	word       string
	tag        string
	sourcePath string
	destPath   string
	passphrase string
	verbose    bool
	showHelp   bool
}

func main() {
	config := parseCmdArgs()

	if config.showHelp {
		printUsage()
		return
	}

	log := newLogger(config.verbose)

	if err := validateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	passphrase, err := resolvePassphrase(config)
	if err != nil {
		log.WithError(err).Error("Could not read passphrase")
		os.Exit(1)
	}

	// The library takes the passphrase as an immutable string copy, so the
	// wipe is best effort: it clears the prompt buffer only.
	err = process(config, string(passphrase), log)
	zeroBytes(passphrase)
	if err != nil {
		log.WithError(err).Error("Processing failed")
		os.Exit(1)
	}
}

// parseCmdArgs parses command line arguments
func parseCmdArgs() cmdConfig {
	var config cmdConfig

	flag.StringVar(&config.operation, "operation", "", "Operation: 'encrypt' or 'decrypt'")
	flag.StringVar(&config.operation, "o", "", "Operation: 'encrypt' or 'decrypt' (shorthand)")

	flag.StringVar(&config.word, "word", "", "Word to encrypt or decrypt")
	flag.StringVar(&config.word, "w", "", "Word to encrypt or decrypt (shorthand)")

	flag.StringVar(&config.tag, "tag", "", "Verification tag for word decryption")
	flag.StringVar(&config.tag, "t", "", "Verification tag for word decryption (shorthand)")

	flag.StringVar(&config.sourcePath, "source", "", "Source file path")
	flag.StringVar(&config.sourcePath, "s", "", "Source file path (shorthand)")

	flag.StringVar(&config.destPath, "dest", "", "Destination file path")
	flag.StringVar(&config.destPath, "d", "", "Destination file path (shorthand)")

	flag.StringVar(&config.passphrase, "passphrase", "", "Passphrase for encryption/decryption")
	flag.StringVar(&config.passphrase, "p", "", "Passphrase for encryption/decryption (shorthand)")

	flag.BoolVar(&config.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&config.verbose, "v", false, "Enable debug logging (shorthand)")

	flag.BoolVar(&config.showHelp, "help", false, "Show help message")
	flag.BoolVar(&config.showHelp, "h", false, "Show help message (shorthand)")

	flag.Parse()

	// Normalize operation to lowercase
	config.operation = strings.ToLower(config.operation)

	return config
}

// newLogger builds the stderr logger; verbose mode enables debug output
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// validateConfig validates the command line configuration
func validateConfig(config cmdConfig) error {
	if config.operation != "encrypt" && config.operation != "decrypt" {
		return fmt.Errorf("operation must be 'encrypt' or 'decrypt', got '%s'", config.operation)
	}

	wordMode := config.word != ""
	fileMode := config.sourcePath != "" || config.destPath != ""

	if wordMode && fileMode {
		return fmt.Errorf("choose either a word (-w) or a file pair (-s/-d), not both")
	}

	if !wordMode && !fileMode {
		return fmt.Errorf("nothing to do: provide a word (-w) or a file pair (-s/-d)")
	}

	if fileMode {
		if config.sourcePath == "" {
			return fmt.Errorf("source file path is required")
		}

		if config.destPath == "" {
			return fmt.Errorf("destination file path is required")
		}

		// Check if source file exists
		if _, err := os.Stat(config.sourcePath); os.IsNotExist(err) {
			return fmt.Errorf("source file does not exist: %s", config.sourcePath)
		}

		// Create destination directory if it doesn't exist
		destDir := filepath.Dir(config.destPath)
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("failed to create destination directory: %v", err)
		}
	}

	return nil
}

// resolvePassphrase returns the passphrase from the flag, the environment,
// or an interactive prompt; encryption prompts twice
func resolvePassphrase(config cmdConfig) ([]byte, error) {
	if config.passphrase != "" {
		return []byte(config.passphrase), nil
	}

	if config.operation == "encrypt" {
		return getPassphraseWithConfirm("Enter passphrase: ", "Confirm passphrase: ")
	}
	return getPassphrase("Enter passphrase: ")
}

// process dispatches to word or file handling
func process(config cmdConfig, passphrase string, log *logrus.Logger) error {
	if config.word != "" {
		return processWord(config, passphrase, log)
	}
	return processFile(config, passphrase, log)
}

// processWord handles single-word encryption and decryption
func processWord(config cmdConfig, passphrase string, log *logrus.Logger) error {
	switch config.operation {
	case "encrypt":
		ciphertext, tag, err := wordcrypt.Encrypt(config.word, passphrase)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"length": len(config.word),
		}).Debug("Word encrypted")

		fmt.Printf("%s%s%s\n", ciphertext, wordcrypt.RecordDelimiter, tag)

	case "decrypt":
		word, tag := config.word, config.tag

		// A full ciphertext|||tag line can be passed directly to -w
		if tag == "" {
			if ciphertext, embedded, found := strings.Cut(word, wordcrypt.RecordDelimiter); found {
				word, tag = ciphertext, embedded
			}
		}
		if tag == "" {
			log.Warn("No tag provided (-t); verification will fail")
		}

		recovered, verified, err := wordcrypt.Decrypt(word, passphrase, tag)
		if err != nil {
			return err
		}

		if !verified {
			log.Warn("Verification failed: wrong passphrase or altered data")
		}

		fmt.Println(recovered)
	}

	return nil
}

// processFile handles file encryption and decryption
func processFile(config cmdConfig, passphrase string, log *logrus.Logger) error {
	switch config.operation {
	case "encrypt":
		if err := wordcrypt.EncodeFile(config.sourcePath, config.destPath, passphrase); err != nil {
			return err
		}

	case "decrypt":
		stats, err := wordcrypt.DecodeFile(config.sourcePath, config.destPath, passphrase)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"total":    stats.Total,
			"verified": stats.Verified,
			"failed":   stats.Failed,
		}).Info("Verification summary")

		if stats.Failed > 0 {
			log.WithFields(logrus.Fields{
				"failed": stats.Failed,
			}).Warn("Some lines failed verification: wrong passphrase or altered data")
		}
	}

	fmt.Printf("Successfully %sed file: %s -> %s\n", config.operation, config.sourcePath, config.destPath)
	return nil
}

// printUsage prints the usage information
func printUsage() {
	fmt.Printf(`wordcrypt Command Line Tool

Usage:
  %s [options]

Required Options:
  -o, --operation <op>     Operation: 'encrypt' or 'decrypt'

Word Mode:
  -w, --word <word>        Word to encrypt or decrypt
  -t, --tag <tag>          Verification tag for decryption

File Mode:
  -s, --source <path>      Source file path
  -d, --dest <path>        Destination file path

Optional Options:
  -p, --passphrase <pwd>   Passphrase (default: %s, then prompt)
  -v, --verbose            Enable debug logging
  -h, --help               Show this help message

Examples:
  # Encrypt a single word (prints a ciphertext|||tag line)
  %s -o encrypt -w HELLO -p "mypassphrase"

  # Decrypt a word; the tag may be embedded in the word argument
  %s -o decrypt -w "ciphertext|||tag" -p "mypassphrase"

  # Encrypt a text file
  %s -o encrypt -s notes.txt -d notes.txt.enc

  # Decrypt it again
  %s -o decrypt -s notes.txt.enc -d notes.txt

Description:
  This tool encrypts and decrypts single words or whole text files with a
  passphrase-keyed shuffle and substitution pipeline. Every encrypted word
  carries an HMAC-SHA256 tag that is checked on decryption, so a wrong
  passphrase or altered data is reported instead of silently accepted.

  Files are processed line by line: each non-empty line becomes one
  ciphertext|||tag record and blank lines are preserved. Per-line
  verification failures are counted and reported but never abort the run.

`, os.Args[0], passphraseEnvVar, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}
