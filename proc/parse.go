package proc

import (
	"fmt"
	"os/user"
	"strconv"
	"strings"
)

// IsNumeric reports whether s is a plain decimal number, i.e. a pid entry
// under /proc.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// statFields holds the subset of /proc/<pid>/stat the monitor consumes.
// utime and stime are in clock ticks, vsize in bytes, rss in pages.
type statFields struct {
	Comm  string
	State byte
	Utime uint64
	Stime uint64
	Nice  int64
	Vsize int64
	RSS   int64
}

// parseStatLine parses one /proc/<pid>/stat line. The comm field is
// delimited by parentheses and may itself contain spaces or parentheses,
// so fields are counted from the last ')'.
func parseStatLine(line string) (statFields, error) {
	var sf statFields

	line = strings.TrimSpace(line)
	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r < 0 || r <= l {
		return sf, fmt.Errorf("malformed stat line: no comm field")
	}

	sf.Comm = line[l+1 : r]
	fields := strings.Fields(line[r+1:])
	if len(fields) < 22 {
		return sf, fmt.Errorf("malformed stat line: %d fields after comm", len(fields))
	}

	// fields[0] is stat field 3 ("state"); stat numbering below follows
	// proc(5).
	field := func(i int) string { return fields[i-3] }

	sf.State = field(3)[0]
	sf.Utime, _ = strconv.ParseUint(field(14), 10, 64)
	sf.Stime, _ = strconv.ParseUint(field(15), 10, 64)
	sf.Nice, _ = strconv.ParseInt(field(19), 10, 64)
	sf.Vsize, _ = strconv.ParseInt(field(23), 10, 64)
	sf.RSS, _ = strconv.ParseInt(field(24), 10, 64)

	return sf, nil
}

// parseStatusUID extracts the real uid from /proc/<pid>/status content.
func parseStatusUID(status string) uint32 {
	for _, line := range strings.Split(status, "\n") {
		if strings.HasPrefix(line, "Uid:") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				if v, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
					return uint32(v)
				}
			}
		}
	}
	return 0
}

// UIDToName resolves a uid to a username, falling back to the numeric form
// for uids without a passwd entry.
func UIDToName(uid uint32) string {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return fmt.Sprint(uid)
	}
	return u.Username
}
