package timezone

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// bucketNames maps an hour-offset bucket to a representative IANA zone.
// This is a longitude approximation, not a geographic timezone database;
// callers wanting precision supply an explicit timezone instead.
var bucketNames = map[int]string{
	-12: "Pacific/Auckland", -11: "Pacific/Midway", -10: "Pacific/Honolulu",
	-9: "America/Anchorage", -8: "America/Los_Angeles", -7: "America/Denver",
	-6: "America/Chicago", -5: "America/New_York", -4: "America/Halifax",
	-3: "America/Sao_Paulo", -2: "America/Noronha", -1: "Atlantic/Azores",
	0: "UTC", 1: "Europe/London", 2: "Europe/Berlin", 3: "Europe/Moscow",
	4: "Asia/Dubai", 5: "Asia/Karachi", 6: "Asia/Dhaka", 7: "Asia/Bangkok",
	8: "Asia/Shanghai", 9: "Asia/Tokyo", 10: "Australia/Sydney",
	11: "Pacific/Norfolk", 12: "Pacific/Fiji", 13: "Pacific/Tongatapu",
	14: "Pacific/Kiritimati",
}

// FromCoordinates maps a coordinate to a timezone name by bucketing the
// longitude into hour offsets, clamped to [-12, 14]. Unmapped buckets fall
// back to UTC. Always returns a non-empty name.
func FromCoordinates(lat, lon float64) string {
	_ = lat // latitude does not influence the bucket

	offset := int(lon / 15)
	if offset < -12 {
		offset = -12
	} else if offset > 14 {
		offset = 14
	}

	name, ok := bucketNames[offset]
	if !ok {
		return "UTC"
	}
	return name
}

const memoSize = 100

// Resolver memoizes FromCoordinates behind a bounded LRU. The memo is a
// performance layer only; correctness never depends on it.
type Resolver struct {
	memo *lru.Cache[string, string]
}

func NewResolver() *Resolver {
	memo, err := lru.New[string, string](memoSize)
	if err != nil {
		// Only reachable with a non-positive size; resolve unmemoized.
		return &Resolver{}
	}
	return &Resolver{memo: memo}
}

func (r *Resolver) Resolve(lat, lon float64) string {
	if r.memo == nil {
		return FromCoordinates(lat, lon)
	}

	key := fmt.Sprintf("%v_%v", lat, lon)
	if name, ok := r.memo.Get(key); ok {
		return name
	}

	name := FromCoordinates(lat, lon)
	r.memo.Add(key, name)
	return name
}
