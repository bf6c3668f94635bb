package store

import "github.com/AfshinJalili/artkv"

type Info struct {
	Keys        int          `json:"keys"`
	Index       string       `json:"index"`
	Compression string       `json:"compression"`
	ValueBytes  int64        `json:"value_bytes"`
	Compressed  int64        `json:"compressed_values"`
	Tree        *artkv.Stats `json:"tree,omitempty"`
}
