package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/x/ansi"
)

// search tracks the query typed after "/" and the rendered lines matching it.
type search struct {
	input   textinput.Model
	active  bool
	query   string
	matches []int
	index   int
}

func newSearch() search {
	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 256
	input.Placeholder = "検索語"
	input.CursorEnd()
	input.Blur()
	return search{input: input, index: -1}
}

func (s *search) clear() {
	s.query = ""
	s.matches = nil
	s.index = -1
}

func (s *search) statusLine() string {
	if s.query == "" {
		return ""
	}
	if len(s.matches) == 0 || s.index < 0 {
		return fmt.Sprintf("/%s (0/0)", s.query)
	}
	return fmt.Sprintf("/%s (%d/%d)", s.query, s.index+1, len(s.matches))
}

// run searches content for query. It returns an error when nothing matches.
func (s *search) run(content, query string, resetIndex bool) error {
	s.query = strings.TrimSpace(query)
	s.matches = findSearchMatches(content, s.query)
	if len(s.matches) == 0 {
		s.index = -1
		return fmt.Errorf("%q に一致しません。", s.query)
	}
	if resetIndex || s.index < 0 || s.index >= len(s.matches) {
		s.index = 0
	}
	return nil
}

// rerun repeats the current query on new content, staying near the line that
// was selected before.
func (s *search) rerun(content string) error {
	prevLine := s.currentLine()
	s.matches = findSearchMatches(content, s.query)
	if len(s.matches) == 0 {
		s.index = -1
		return fmt.Errorf("%q に一致しません。", s.query)
	}
	if prevLine >= 0 {
		s.index = closestMatchIndex(s.matches, prevLine)
	} else if s.index < 0 || s.index >= len(s.matches) {
		s.index = 0
	}
	return nil
}

func (s *search) step(delta int) {
	n := len(s.matches)
	if n == 0 {
		return
	}
	if s.index < 0 {
		s.index = 0
		return
	}
	s.index = (s.index + delta + n) % n
}

func (s *search) currentLine() int {
	if s.index < 0 || s.index >= len(s.matches) {
		return -1
	}
	return s.matches[s.index]
}

func findSearchMatches(content, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" || content == "" {
		return nil
	}

	stripped := ansi.Strip(content)
	lowerContent := strings.ToLower(stripped)
	lowerQuery := strings.ToLower(query)

	var matches []int
	offset := 0
	for {
		pos := strings.Index(lowerContent[offset:], lowerQuery)
		if pos == -1 {
			break
		}
		absolute := offset + pos
		matches = append(matches, strings.Count(stripped[:absolute], "\n"))
		offset = absolute + len(lowerQuery)
	}
	return matches
}

func closestMatchIndex(matches []int, line int) int {
	best := 0
	for i := 1; i < len(matches); i++ {
		if absInt(matches[i]-line) < absInt(matches[best]-line) {
			best = i
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
