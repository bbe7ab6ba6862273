package chunker

import (
	"sort"
	"strings"

	"github.com/crimson-sun/sparktriage/internal/model"
)

// MinChunkSize is the smallest configurable chunk size; it maps to a
// one-line window.
const MinChunkSize = 100

// Split cuts every document into fixed-size line windows. Lines per window
// is chunkSize/100 (minimum 1). Windows never overlap, the tail window may
// be shorter, and whitespace-only windows are dropped. Role classification
// happens once per document from its file name.
//
// Documents are walked in sorted file-name order and windows in position
// order, so identical input always yields identical chunk IDs and
// boundaries. Scores are left zero; the scorer fills them in.
func Split(docs map[string]string, chunkSize int) []model.LogChunk {
	linesPerChunk := chunkSize / 100
	if linesPerChunk < 1 {
		linesPerChunk = 1
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	var chunks []model.LogChunk
	chunkID := 0

	for _, name := range names {
		role := model.RoleFromFileName(name)
		lines := strings.Split(docs[name], "\n")

		for i := 0; i < len(lines); i += linesPerChunk {
			end := i + linesPerChunk
			if end > len(lines) {
				end = len(lines)
			}
			content := strings.Join(lines[i:end], "\n")
			if strings.TrimSpace(content) == "" {
				continue
			}
			chunks = append(chunks, model.LogChunk{
				Content:  content,
				ChunkID:  chunkID,
				FileName: name,
				Role:     role,
			})
			chunkID++
		}
	}
	return chunks
}
