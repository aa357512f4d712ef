package wordcrypt

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// FileHeader is the marker line that starts every encrypted file. Its
	// absence on decode means the input is not an encrypted file.
	FileHeader = "===ENCRYPTED FILE==="

	// RecordDelimiter separates the ciphertext from its verification tag in
	// an encrypted record line. Records are split on its first occurrence.
	RecordDelimiter = "|||"

	// tagLength is the length of one encoded tag: 44 base64 characters for
	// the 32-byte HMAC-SHA256 digest.
	tagLength = 44

	// maxLineBytes caps the length of a single source line during encoding.
	// The codec holds at most one line pair in memory, so this bound is also
	// the peak memory bound per stream.
	maxLineBytes = 1 << 20

	// maxRecordBytes caps the length of a single line during decoding. A
	// record line is its source line plus the delimiter and the tag, so
	// every stream Encode accepts decodes back without truncation.
	maxRecordBytes = maxLineBytes + len(RecordDelimiter) + tagLength
)

// Stats accumulates verification results across the record lines of one
// decode operation. Lines without a record delimiter are passed through and
// not counted.
type Stats struct {
	// Total is the number of record lines processed.
	Total int

	// Verified is the number of records whose tag verified.
	Verified int

	// Failed is the number of records whose tag did not verify
	// (Total - Verified).
	Failed int
}

// count folds one record verification outcome into the statistics.
func (s *Stats) count(verified bool) {
	s.Total++
	if verified {
		s.Verified++
	} else {
		s.Failed++
	}
}

// Encode encrypts a text stream line by line into the encrypted file format.
//
// The output starts with the header marker line. Every non-empty input line
// becomes one record line of the form ciphertext|||tag; empty lines are
// preserved verbatim so the decoded file keeps its blank-line structure.
// Lines are processed one at a time, so memory use is bounded by the longest
// line rather than the stream size. A single source line is limited to 1 MiB;
// a longer line fails with an IOError.
//
// Parameters:
//   - r: The plaintext input stream
//   - w: The destination for the encoded output
//   - passphrase: The user-provided passphrase; must not be empty if any
//     non-empty line exists
//
// Returns:
//   - error: An InputError for an empty passphrase, or an IOError for a
//     read/write failure
func Encode(r io.Reader, w io.Writer, passphrase string) error {
	out := bufio.NewWriter(w)
	if _, err := out.WriteString(FileHeader + "\n"); err != nil {
		return NewIOError("write", "", err)
	}

	scanner := newLineScanner(r, maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if err := out.WriteByte('\n'); err != nil {
				return NewIOError("write", "", err)
			}
			continue
		}

		ciphertext, tag, err := Encrypt(line, passphrase)
		if err != nil {
			return err
		}
		if _, err := out.WriteString(ciphertext + RecordDelimiter + tag + "\n"); err != nil {
			return NewIOError("write", "", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return NewIOError("read", "", err)
	}

	if err := out.Flush(); err != nil {
		return NewIOError("write", "", err)
	}
	return nil
}

// Decode decrypts a stream in the encrypted file format back to plaintext.
//
// The first line must be exactly the header marker; otherwise a FormatError
// is returned and nothing is written to w. After the header, empty lines are
// preserved, record lines are split on the first delimiter and decrypted, and
// lines without a delimiter are copied through unchanged and excluded from
// the statistics. A record that fails verification is still decoded and
// written (best-effort recovery); it is counted in Stats.Failed, never raised
// as an error, so a single bad line cannot abort the stream.
//
// The per-line cap sits above the encoder's source cap by the fixed record
// overhead, so every stream Encode produces decodes back; only a line longer
// than any record Encode can emit fails, with an IOError.
//
// Parameters:
//   - r: The encoded input stream
//   - w: The destination for the decoded plaintext
//   - passphrase: The user-provided passphrase; must not be empty if any
//     record line exists
//
// Returns:
//   - Stats: Counts of total, verified, and failed records
//   - error: A FormatError for a missing header, an InputError for an empty
//     passphrase, or an IOError for a read/write failure
func Decode(r io.Reader, w io.Writer, passphrase string) (Stats, error) {
	scanner := newLineScanner(r, maxRecordBytes)
	if err := readHeader(scanner); err != nil {
		return Stats{}, err
	}
	return decodeRecords(scanner, w, passphrase)
}

// EncodeLines encrypts a slice of lines into encoded form, processing lines
// concurrently.
//
// The result is what Encode would produce for the same lines, split into a
// slice: the header marker first, then one element per input line. Line
// transforms are independent, so they run on an errgroup bounded by
// GOMAXPROCS; results are written by index, which keeps the output order
// identical to the input order.
//
// Parameters:
//   - lines: The plaintext lines to encrypt
//   - passphrase: The user-provided passphrase; must not be empty if any
//     non-empty line exists
//
// Returns:
//   - []string: The header line followed by one encoded line per input line
//   - error: An InputError if the passphrase is empty
func EncodeLines(lines []string, passphrase string) ([]string, error) {
	encoded := make([]string, len(lines)+1)
	encoded[0] = FileHeader

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, line := range lines {
		if line == "" {
			continue
		}
		i, line := i, line // per-iteration copies for the closure (go directive < 1.22)
		eg.Go(func() error {
			ciphertext, tag, err := Encrypt(line, passphrase)
			if err != nil {
				return err
			}
			encoded[i+1] = ciphertext + RecordDelimiter + tag
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}

// DecodeLines decrypts a slice of encoded lines, processing records
// concurrently.
//
// The first element must be exactly the header marker. The remaining elements
// follow the same rules as Decode: empty lines preserved, record lines
// decrypted and counted, delimiter-less lines passed through uncounted.
// Records run on an errgroup bounded by GOMAXPROCS with results written by
// index, so output order matches input order.
//
// Parameters:
//   - lines: The encoded lines, header first
//   - passphrase: The user-provided passphrase; must not be empty if any
//     record line exists
//
// Returns:
//   - []string: One decoded line per input line after the header
//   - Stats: Counts of total, verified, and failed records
//   - error: A FormatError for a missing header or an InputError for an
//     empty passphrase
func DecodeLines(lines []string, passphrase string) ([]string, Stats, error) {
	var stats Stats
	if len(lines) == 0 || lines[0] != FileHeader {
		return nil, stats, NewFormatError(1, "missing header: not an encrypted file")
	}

	body := lines[1:]
	decoded := make([]string, len(body))
	outcomes := make([]recordOutcome, len(body))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, line := range body {
		if line == "" {
			continue
		}
		ciphertext, tag, found := strings.Cut(line, RecordDelimiter)
		if !found {
			decoded[i] = line
			continue
		}
		i := i // per-iteration copy for the closure (go directive < 1.22)
		eg.Go(func() error {
			word, verified, err := Decrypt(ciphertext, passphrase, tag)
			if err != nil {
				return err
			}
			decoded[i] = word
			outcomes[i] = recordOutcome{isRecord: true, verified: verified}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, stats, err
	}

	for _, outcome := range outcomes {
		if outcome.isRecord {
			stats.count(outcome.verified)
		}
	}
	return decoded, stats, nil
}

// EncodeFile encrypts the file at sourcePath into the encrypted file format
// at destPath.
//
// Both files are closed on every path; the destination is flushed and its
// close error reported, so a short write cannot pass silently.
//
// Parameters:
//   - sourcePath: Path of the plaintext file to encrypt
//   - destPath: Path for the encoded output
//   - passphrase: The user-provided passphrase
//
// Returns:
//   - error: An IOError for file failures, or any error from Encode
func EncodeFile(sourcePath, destPath, passphrase string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return NewIOError("open", sourcePath, err)
	}
	defer source.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return NewIOError("create", destPath, err)
	}

	if err := Encode(source, dest, passphrase); err != nil {
		dest.Close()
		return err
	}
	if err := dest.Close(); err != nil {
		return NewIOError("close", destPath, err)
	}
	return nil
}

// DecodeFile decrypts the encrypted file at sourcePath into plaintext at
// destPath and reports verification statistics.
//
// The header is validated before the destination file is created, so a
// FormatError leaves no output file behind and writes nothing.
//
// Parameters:
//   - sourcePath: Path of the encoded file
//   - destPath: Path for the decoded plaintext
//   - passphrase: The user-provided passphrase
//
// Returns:
//   - Stats: Counts of total, verified, and failed records
//   - error: A FormatError for a missing header, an IOError for file
//     failures, or any error from the record decoding
func DecodeFile(sourcePath, destPath, passphrase string) (Stats, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return Stats{}, NewIOError("open", sourcePath, err)
	}
	defer source.Close()

	scanner := newLineScanner(source, maxRecordBytes)
	if err := readHeader(scanner); err != nil {
		return Stats{}, err
	}

	dest, err := os.Create(destPath)
	if err != nil {
		return Stats{}, NewIOError("create", destPath, err)
	}

	stats, err := decodeRecords(scanner, dest, passphrase)
	if err != nil {
		dest.Close()
		return stats, err
	}
	if err := dest.Close(); err != nil {
		return stats, NewIOError("close", destPath, err)
	}
	return stats, nil
}

// recordOutcome captures whether a decoded line was a counted record and
// whether its tag verified.
type recordOutcome struct {
	isRecord bool
	verified bool
}

// newLineScanner returns a scanner that accepts lines up to maxBytes. The
// extra buffer byte leaves room for the newline, which must share the buffer
// with its line.
func newLineScanner(r io.Reader, maxBytes int) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxBytes+1)
	return scanner
}

// readHeader consumes the first line and checks it is exactly the header
// marker.
func readHeader(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return NewIOError("read", "", err)
		}
		return NewFormatError(1, "missing header: not an encrypted file")
	}
	if scanner.Text() != FileHeader {
		return NewFormatError(1, "missing header: not an encrypted file")
	}
	return nil
}

// decodeRecords processes every line after the header, writing decoded output
// and accumulating statistics.
func decodeRecords(scanner *bufio.Scanner, w io.Writer, passphrase string) (Stats, error) {
	var stats Stats
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if err := out.WriteByte('\n'); err != nil {
				return stats, NewIOError("write", "", err)
			}
			continue
		}

		ciphertext, tag, found := strings.Cut(line, RecordDelimiter)
		if !found {
			if _, err := out.WriteString(line + "\n"); err != nil {
				return stats, NewIOError("write", "", err)
			}
			continue
		}

		word, verified, err := Decrypt(ciphertext, passphrase, tag)
		if err != nil {
			return stats, err
		}
		if _, err := out.WriteString(word + "\n"); err != nil {
			return stats, NewIOError("write", "", err)
		}
		stats.count(verified)
	}
	if err := scanner.Err(); err != nil {
		return stats, NewIOError("read", "", err)
	}

	if err := out.Flush(); err != nil {
		return stats, NewIOError("write", "", err)
	}
	return stats, nil
}
