// Package ingest loads documents into the static knowledge index: split
// into overlapping chunks, embed, store.
package ingest

import "strings"

const (
	defaultChunkSize    = 500
	defaultChunkOverlap = 50
)

// Chunk splits text into windows of at most size runes, with overlap runes
// shared between consecutive windows so sentences cut at a boundary still
// retrieve. Whitespace-only windows are dropped.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = defaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = defaultChunkOverlap
		if overlap >= size {
			overlap = size / 2
		}
	}

	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}
