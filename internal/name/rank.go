// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// rank computes the deterministic pseudo-random rank of a record under seed.
//
// The rank is a pure function of (seed, record identity), so repeated calls
// with the same seed and filter yield a stable ordering.
func rank(seed string, record *Record) uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(seed)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(strconv.FormatInt(record.ID, 10))
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(record.Name)
	return digest.Sum64()
}

// rankSort orders records ascending by their seeded rank.
//
// Ties (astronomically unlikely) break on record ID so the ordering stays a
// total order regardless of hash collisions.
func rankSort(seed string, records []*Record) {
	ranks := make(map[int64]uint64, len(records))
	for _, record := range records {
		ranks[record.ID] = rank(seed, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := ranks[records[i].ID], ranks[records[j].ID]
		if ri != rj {
			return ri < rj
		}
		return records[i].ID < records[j].ID
	})
}

// window applies skip=(page-1)*pageSize and limit=pageSize to a ranked set.
//
// Extreme page numbers can wrap the skip multiplication; a wrapped offset
// is past the end of any real data set, so it yields an empty page.
func window(records []*Record, page, pageSize int) []*Record {
	offset := (page - 1) * pageSize
	if offset < 0 || offset >= len(records) {
		return nil
	}

	end := offset + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[offset:end]
}
