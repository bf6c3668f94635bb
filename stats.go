package artkv

import "github.com/AfshinJalili/artkv/internal/art"

// Stats counts nodes by kind and describes the shape of the tree.
type Stats = art.Stats
