// Package syncer reconciles the local cache with the remote document store.
package syncer

import "time"

// Record is an identifiable, timestamped item subject to merging.
type Record interface {
	RecordID() string
	ModifiedAt() time.Time
}

// MergeRecords resolves a local and a remote item set into one.
//
// The map is seeded from local; a remote item replaces the local one iff no
// local item with that id exists, or both carry a modification timestamp and
// the remote one is strictly later. Items present only locally are always
// preserved: a merge never propagates remote deletions, deletes are explicit
// only. Conflicts are settled at whole-record granularity — the later record
// wins wholesale, concurrent edits to disjoint fields are not combined.
//
// Result order is unspecified; callers must not depend on it.
func MergeRecords[T Record](local, remote []T) []T {
	byID := make(map[string]T, len(local))
	for _, item := range local {
		byID[item.RecordID()] = item
	}
	for _, item := range remote {
		existing, ok := byID[item.RecordID()]
		if !ok {
			byID[item.RecordID()] = item
			continue
		}
		if !item.ModifiedAt().IsZero() && !existing.ModifiedAt().IsZero() &&
			item.ModifiedAt().After(existing.ModifiedAt()) {
			byID[item.RecordID()] = item
		}
	}

	merged := make([]T, 0, len(byID))
	for _, item := range byID {
		merged = append(merged, item)
	}
	return merged
}
