package browser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vidyasagar/navhist/internal/logger"
)

// DefaultDelimiter separates the url from the timestamp in a record.
const DefaultDelimiter = '|'

const maxRecordSize = 1024 * 1024

// MalformedPolicy decides what happens when a record cannot be parsed.
type MalformedPolicy string

const (
	// PolicyAbort stops at the first bad record and keeps what came before it.
	PolicyAbort MalformedPolicy = "abort"
	// PolicySkip logs the bad record and carries on.
	PolicySkip MalformedPolicy = "skip"
)

// errIncomplete marks a record that is missing its delimiter or timestamp.
// At the end of the input such a record is dropped silently.
var errIncomplete = fmt.Errorf("%w: incomplete record", ErrMalformedRecord)

// LoadResult summarizes a decode pass.
type LoadResult struct {
	Loaded  int
	Skipped int
}

// ParseRecord parses a single "url<delim>timestamp" line.
func ParseRecord(line string, delim rune) (NavigationEntry, error) {
	url, ts, found := strings.Cut(line, string(delim))
	ts = strings.TrimSpace(ts)
	if !found || ts == "" {
		return NavigationEntry{}, errIncomplete
	}
	if url == "" {
		return NavigationEntry{}, fmt.Errorf("%w: empty url", ErrMalformedRecord)
	}
	timestamp, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return NavigationEntry{}, fmt.Errorf("%w: %w", ErrMalformedTimestamp, err)
	}
	return NewNavigationEntry(url, timestamp), nil
}

// EncodeRecord renders e as a record line without the trailing newline.
func EncodeRecord(e NavigationEntry, delim rune) (string, error) {
	if e.IsEmpty() || strings.ContainsRune(e.url, delim) || strings.ContainsAny(e.url, "\r\n") {
		return "", fmt.Errorf("%w: %q", ErrUnencodable, e.url)
	}
	return e.url + string(delim) + strconv.FormatInt(e.timestamp, 10), nil
}

// WriteRecords writes entries in order, one record per line.
func WriteRecords(w io.Writer, entries []NavigationEntry, delim rune) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		line, err := EncodeRecord(e, delim)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decoder reads seed records.
type Decoder struct {
	Delimiter rune
	Policy    MalformedPolicy
	Logger    logger.Logger
}

// errTooLong marks a line longer than maxRecordSize.
var errTooLong = fmt.Errorf("%w: %w", ErrMalformedRecord, bufio.ErrTooLong)

const previewSize = 64

// Decode reads every record from r in file order. With PolicyAbort the
// entries parsed before the bad record are returned along with a
// *RecordError.
func (d Decoder) Decode(r io.Reader) ([]NavigationEntry, LoadResult, error) {
	delim := d.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}
	log := d.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	var (
		entries []NavigationEntry
		res     LoadResult
		// An incomplete record is only malformed if another record follows it.
		pending *RecordError
	)

	// malformed applies the policy and reports whether decoding must stop.
	malformed := func(recErr *RecordError) bool {
		if d.Policy == PolicySkip {
			log.Warn("skipping malformed record", zap.Int("line", recErr.Line), zap.Error(recErr.Err))
			res.Skipped++
			return false
		}
		return true
	}

	br := bufio.NewReaderSize(r, 64*1024)
	for lineNo := 1; ; lineNo++ {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Loaded = len(entries)
			return entries, res, fmt.Errorf("reading records: %w", err)
		}
		if !tooLong && strings.TrimSpace(line) == "" {
			continue
		}

		if pending != nil {
			if malformed(pending) {
				res.Loaded = len(entries)
				return entries, res, pending
			}
			pending = nil
		}

		if tooLong {
			recErr := &RecordError{Line: lineNo, Text: line, Err: errTooLong}
			if malformed(recErr) {
				res.Loaded = len(entries)
				return entries, res, recErr
			}
			continue
		}

		e, err := ParseRecord(line, delim)
		if err == nil {
			entries = append(entries, e)
			continue
		}
		recErr := &RecordError{Line: lineNo, Text: line, Err: err}
		if err == errIncomplete {
			pending = recErr
			continue
		}
		if malformed(recErr) {
			res.Loaded = len(entries)
			return entries, res, recErr
		}
	}

	if pending != nil {
		log.Debug("dropping partial trailing record", zap.Int("line", pending.Line))
	}
	res.Loaded = len(entries)
	return entries, res, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxRecordSize is read to its end and only a short prefix is returned.
func readLine(br *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxRecordSize {
				tooLong = true
				buf = buf[:previewSize]
			}
		}
		if !isPrefix {
			return strings.TrimSuffix(string(buf), "\r"), tooLong, nil
		}
	}
}
