package model

// Entry is one registered command. Its index is its 1-based position in the
// loaded sequence, so it changes when an earlier entry is deleted.
type Entry struct {
	Command  string `json:"command"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

// At returns the entry at 1-based index.
func At(entries []Entry, index int) (Entry, bool) {
	if index < 1 || index > len(entries) {
		return Entry{}, false
	}
	return entries[index-1], true
}

// Remove returns entries without the one at 1-based index. Later entries
// move up one position. The input slice is not modified.
func Remove(entries []Entry, index int) ([]Entry, Entry, bool) {
	removed, ok := At(entries, index)
	if !ok {
		return entries, Entry{}, false
	}
	out := make([]Entry, 0, len(entries)-1)
	out = append(out, entries[:index-1]...)
	out = append(out, entries[index:]...)
	return out, removed, true
}

// IndexOf returns the 1-based index of the first entry whose command text
// equals cmd, or 0.
func IndexOf(entries []Entry, cmd string) int {
	for i, e := range entries {
		if e.Command == cmd {
			return i + 1
		}
	}
	return 0
}
