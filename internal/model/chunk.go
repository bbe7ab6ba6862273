package model

// LogChunk is a contiguous line window cut from one log document.
// Created by the chunker, scored by the scorer, then treated as read-only.
type LogChunk struct {
	Content         string   `json:"content"`
	ChunkID         int      `json:"chunk_id"`
	FileName        string   `json:"file_name"`
	Role            Role     `json:"role"`
	PriorityScore   float64  `json:"priority_score"`
	ErrorIndicators []string `json:"error_indicators,omitempty"`
}
