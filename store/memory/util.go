package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// newestFirst flattens an edge set into IDs ordered by edge creation time desc.
func newestFirst(edges map[uuid.UUID]time.Time) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := edges[ids[i]], edges[ids[j]]
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return ids[i].String() > ids[j].String()
	})
	return ids
}
