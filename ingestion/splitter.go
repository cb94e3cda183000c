package ingestion

import "strings"

// Boundary preference order: paragraphs, then lines, then words, then a hard
// character split as the last resort.
var separators = []string{"\n\n", "\n", " ", ""}

// Splitter cuts document text into chunks of at most chunkSize characters
// with chunkOverlap characters shared between adjacent chunks. Splitting is
// deterministic: the same text always produces the same chunks.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

// NewSplitter creates a splitter with the given chunk size and overlap.
func NewSplitter(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, ErrInvalidOverlap
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}, nil
}

// Split cuts text into chunks. Whitespace-only chunks are dropped.
func (s *Splitter) Split(text string) []string {
	return s.split(text, separators)
}

func (s *Splitter) split(text string, seps []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= s.chunkSize {
		return []string{text}
	}

	sep, rest := pickSeparator(text, seps)
	if sep == "" {
		return s.hardSplit(text)
	}

	return s.merge(strings.Split(text, sep), sep, rest)
}

// pickSeparator returns the first separator present in text, plus the
// separators remaining after it for recursive splitting.
func pickSeparator(text string, seps []string) (string, []string) {
	for i, sep := range seps {
		if sep == "" {
			return "", nil
		}
		if strings.Contains(text, sep) {
			return sep, seps[i+1:]
		}
	}
	return "", nil
}

// merge greedily packs parts into chunks no longer than chunkSize, carrying
// a tail of up to chunkOverlap characters into the next chunk. Parts that
// are themselves too long recurse on the remaining separators.
func (s *Splitter) merge(parts []string, sep string, rest []string) []string {
	var chunks []string
	var current []string
	currentLen := 0

	emit := func(keepTail bool) {
		if currentLen == 0 {
			return
		}
		chunk := strings.Join(current, sep)
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}

		if !keepTail {
			current = nil
			currentLen = 0
			return
		}

		var tail []string
		tailLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			addLen := len(current[i])
			if tailLen > 0 {
				addLen += len(sep)
			}
			if tailLen+addLen > s.chunkOverlap {
				break
			}
			tail = append([]string{current[i]}, tail...)
			tailLen += addLen
		}
		current = tail
		currentLen = tailLen
	}

	for _, part := range parts {
		if len(part) > s.chunkSize {
			emit(false)
			chunks = append(chunks, s.split(part, rest)...)
			continue
		}

		joinLen := 0
		if currentLen > 0 {
			joinLen = len(sep)
		}
		if currentLen+joinLen+len(part) > s.chunkSize {
			emit(true)
			joinLen = 0
			if currentLen > 0 {
				joinLen = len(sep)
			}
			// The overlap tail plus the new part may still overflow
			if currentLen+joinLen+len(part) > s.chunkSize {
				current = nil
				currentLen = 0
				joinLen = 0
			}
		}

		current = append(current, part)
		currentLen += joinLen + len(part)
	}

	emit(false)
	return chunks
}

// hardSplit cuts text into fixed-size windows when no separator applies.
func (s *Splitter) hardSplit(text string) []string {
	runes := []rune(text)
	step := s.chunkSize - s.chunkOverlap

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunk := string(runes[start:end])
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}
