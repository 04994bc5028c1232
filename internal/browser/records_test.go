package browser

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantURL string
		wantTS  int64
		wantErr error
	}{
		{name: "simple", line: "https://example.com|1700000000", wantURL: "https://example.com", wantTS: 1700000000},
		{name: "spaces_around_timestamp", line: "a.com| 42 ", wantURL: "a.com", wantTS: 42},
		{name: "url_keeps_text_before_first_delimiter", line: "a.com|1|2", wantErr: ErrMalformedTimestamp},
		{name: "no_delimiter", line: "a.com", wantErr: ErrMalformedRecord},
		{name: "empty_timestamp", line: "a.com|", wantErr: ErrMalformedRecord},
		{name: "empty_url", line: "|12", wantErr: ErrMalformedRecord},
		{name: "non_numeric", line: "a.com|yesterday", wantErr: ErrMalformedTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ParseRecord(tt.line, DefaultDelimiter)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantURL, e.URL())
			require.Equal(t, tt.wantTS, e.Timestamp())
		})
	}
}

func TestDecoder(t *testing.T) {
	t.Run("last_line_without_newline_is_kept", func(t *testing.T) {
		entries, res, err := Decoder{}.Decode(strings.NewReader("a.com|1\nb.com|2"))
		require.NoError(t, err)
		require.Equal(t, 2, res.Loaded)
		require.Equal(t, []string{"a.com", "b.com"}, urls(entries))
	})

	t.Run("partial_trailing_record_dropped", func(t *testing.T) {
		entries, res, err := Decoder{}.Decode(strings.NewReader("a.com|1\nb.com|2\nc.co"))
		require.NoError(t, err)
		require.Equal(t, 2, res.Loaded)
		require.Equal(t, []string{"a.com", "b.com"}, urls(entries))
	})

	t.Run("partial_trailing_record_before_blank_lines", func(t *testing.T) {
		entries, _, err := Decoder{}.Decode(strings.NewReader("a.com|1\nb.com|\n\n\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"a.com"}, urls(entries))
	})

	t.Run("crlf_and_blank_lines", func(t *testing.T) {
		entries, _, err := Decoder{}.Decode(strings.NewReader("a.com|1\r\n\r\nb.com|2\r\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"a.com", "b.com"}, urls(entries))
		require.Equal(t, int64(2), entries[1].Timestamp())
	})

	t.Run("incomplete_record_mid_file_is_malformed", func(t *testing.T) {
		entries, _, err := Decoder{}.Decode(strings.NewReader("a.com|1\nbroken\nc.com|3\n"))
		var recErr *RecordError
		require.ErrorAs(t, err, &recErr)
		require.Equal(t, 2, recErr.Line)
		require.Equal(t, "broken", recErr.Text)
		require.ErrorIs(t, err, ErrMalformedRecord)
		require.Equal(t, []string{"a.com"}, urls(entries))
	})

	t.Run("skip_policy_counts", func(t *testing.T) {
		dec := Decoder{Policy: PolicySkip}
		entries, res, err := dec.Decode(strings.NewReader("x|1\nbad\ny|zz\nz|3\n"))
		require.NoError(t, err)
		require.Equal(t, LoadResult{Loaded: 2, Skipped: 2}, res)
		require.Equal(t, []string{"x", "z"}, urls(entries))
	})

	oversized := "a.com|1\nb.com|2\n" + strings.Repeat("x", 2<<20) + "|3\nc.com|4\n"

	t.Run("oversized_line_aborts_after_earlier_records", func(t *testing.T) {
		entries, res, err := Decoder{}.Decode(strings.NewReader(oversized))
		var recErr *RecordError
		require.ErrorAs(t, err, &recErr)
		require.Equal(t, 3, recErr.Line)
		require.ErrorIs(t, err, ErrMalformedRecord)
		require.ErrorIs(t, err, bufio.ErrTooLong)
		require.Len(t, recErr.Text, previewSize)
		require.Equal(t, LoadResult{Loaded: 2}, res)
		require.Equal(t, []string{"a.com", "b.com"}, urls(entries))
	})

	t.Run("oversized_line_skipped", func(t *testing.T) {
		dec := Decoder{Policy: PolicySkip}
		entries, res, err := dec.Decode(strings.NewReader(oversized))
		require.NoError(t, err)
		require.Equal(t, LoadResult{Loaded: 3, Skipped: 1}, res)
		require.Equal(t, []string{"a.com", "b.com", "c.com"}, urls(entries))
	})
}

func TestWriteRecords(t *testing.T) {
	t.Run("writes_one_line_per_entry", func(t *testing.T) {
		var buf bytes.Buffer
		entries := []NavigationEntry{NewNavigationEntry("a.com", 1), NewNavigationEntry("b.com", 2)}
		require.NoError(t, WriteRecords(&buf, entries, DefaultDelimiter))
		require.Equal(t, "a.com|1\nb.com|2\n", buf.String())
	})

	t.Run("rejects_url_with_delimiter", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteRecords(&buf, []NavigationEntry{NewNavigationEntry("a|b", 1)}, DefaultDelimiter)
		require.ErrorIs(t, err, ErrUnencodable)
	})

	t.Run("rejects_sentinel", func(t *testing.T) {
		_, err := EncodeRecord(NavigationEntry{}, DefaultDelimiter)
		require.ErrorIs(t, err, ErrUnencodable)
	})
}
