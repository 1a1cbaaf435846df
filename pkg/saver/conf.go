package saver

import (
	"fmt"
	"strings"
)

// confFile is a line-preserving model of an INI-style configuration file.
// Lookups and edits address a key within a section ("" addresses a key in any
// section); untouched lines survive re-serialization byte for byte.
type confFile struct {
	lines []confLine
}

type confLine struct {
	raw      string
	section  string // section in effect for this line
	isHeader bool
	key      string // set for key=value lines only
	value    string
}

// parseConf builds the line model from file content.
func parseConf(content string) *confFile {
	f := &confFile{}
	if content == "" {
		return f
	}

	raw := strings.Split(content, "\n")
	// A trailing newline yields one empty trailing element; drop it so the
	// model holds one entry per actual line.
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	section := ""
	for _, line := range raw {
		l := confLine{raw: line, section: section}
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			l.section = section
			l.isHeader = true
		case trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";"):
			// blank or comment line, kept verbatim
		default:
			if key, value, ok := strings.Cut(trimmed, "="); ok {
				l.key = strings.TrimSpace(key)
				l.value = strings.TrimSpace(value)
			}
		}
		f.lines = append(f.lines, l)
	}
	return f
}

// get returns the value of key within section. An empty section matches the
// key anywhere in the file.
func (f *confFile) get(section, key string) (string, bool) {
	for _, l := range f.lines {
		if l.key == key && (section == "" || l.section == section) {
			return l.value, true
		}
	}
	return "", false
}

// set rewrites the first line holding key within section and reports whether
// such a line existed.
func (f *confFile) set(section, key, value string) bool {
	for i := range f.lines {
		l := &f.lines[i]
		if l.key == key && (section == "" || l.section == section) {
			l.raw = fmt.Sprintf("%s=%s", key, value)
			l.value = value
			return true
		}
	}
	return false
}

// appendKey inserts key=value at the end of the given section, creating the
// section header when it does not exist yet. An empty section appends at the
// top level.
func (f *confFile) appendKey(section, key, value string) {
	entry := confLine{
		raw:     fmt.Sprintf("%s=%s", key, value),
		section: section,
		key:     key,
		value:   value,
	}

	if section == "" {
		f.lines = append(f.lines, entry)
		return
	}

	headerAt := -1
	for i, l := range f.lines {
		if l.isHeader && l.section == section {
			headerAt = i
			break
		}
	}

	if headerAt == -1 {
		if len(f.lines) > 0 {
			f.lines = append(f.lines, confLine{section: f.lastSection()})
		}
		f.lines = append(f.lines,
			confLine{raw: fmt.Sprintf("[%s]", section), section: section, isHeader: true},
			entry)
		return
	}

	// Insert before the next section header, backing up over blank lines.
	at := len(f.lines)
	for i := headerAt + 1; i < len(f.lines); i++ {
		if f.lines[i].isHeader {
			at = i
			break
		}
	}
	for at > headerAt+1 && strings.TrimSpace(f.lines[at-1].raw) == "" {
		at--
	}

	f.lines = append(f.lines, confLine{})
	copy(f.lines[at+1:], f.lines[at:])
	f.lines[at] = entry
}

func (f *confFile) lastSection() string {
	if len(f.lines) == 0 {
		return ""
	}
	return f.lines[len(f.lines)-1].section
}

// String re-serializes the file with a trailing newline.
func (f *confFile) String() string {
	if len(f.lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, l := range f.lines {
		b.WriteString(l.raw)
		b.WriteByte('\n')
	}
	return b.String()
}
