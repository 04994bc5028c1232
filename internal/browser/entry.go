package browser

import "time"

// TimestampLayout is the calendar format used when showing visit times.
const TimestampLayout = "Mon Jan 2 15:04:05 2006"

// NavigationEntry is a single visited page. The zero value has an empty URL
// and stands for "no entry".
type NavigationEntry struct {
	url       string
	timestamp int64 // seconds since epoch
}

// NewNavigationEntry creates an entry for url visited at timestamp.
func NewNavigationEntry(url string, timestamp int64) NavigationEntry {
	return NavigationEntry{url: url, timestamp: timestamp}
}

// URL returns the page address.
func (e NavigationEntry) URL() string {
	return e.url
}

// Timestamp returns the visit time in epoch seconds.
func (e NavigationEntry) Timestamp() int64 {
	return e.timestamp
}

// SetURL replaces the page address.
func (e *NavigationEntry) SetURL(url string) {
	e.url = url
}

// SetTimestamp replaces the visit time.
func (e *NavigationEntry) SetTimestamp(ts int64) {
	e.timestamp = ts
}

// IsEmpty reports whether e is the sentinel entry.
func (e NavigationEntry) IsEmpty() bool {
	return e.url == ""
}

// Time returns the visit time.
func (e NavigationEntry) Time() time.Time {
	return time.Unix(e.timestamp, 0)
}

// FormatTimestamp renders the visit time in loc. A nil loc means time.Local.
func (e NavigationEntry) FormatTimestamp(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return e.Time().In(loc).Format(TimestampLayout)
}

// DisplayTimestamp renders the visit time in the local zone.
func (e NavigationEntry) DisplayTimestamp() string {
	return e.FormatTimestamp(nil)
}

// Format renders the entry the way history listings show it.
func (e NavigationEntry) Format(loc *time.Location) string {
	return "URL:" + e.url + " Visited On: " + e.FormatTimestamp(loc)
}

func (e NavigationEntry) String() string {
	return e.Format(nil)
}
