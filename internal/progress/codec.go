package progress

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// snapshotVersion is bumped when the serialized layout changes.
const snapshotVersion = 1

// snapshot is the durable form of the day map. Days are serialized as
// absolute local-midnight timestamps inside each record.
type snapshot struct {
	Version int             `json:"version"`
	Days    []DailyProgress `json:"days"`
}

// encodeDays serializes the day map to its durable JSON form. Records are
// ordered by day so snapshots are stable byte-for-byte.
func encodeDays(days map[int64]DailyProgress) ([]byte, error) {
	snap := snapshot{Version: snapshotVersion, Days: make([]DailyProgress, 0, len(days))}
	for _, p := range days {
		snap.Days = append(snap.Days, p)
	}
	sort.Slice(snap.Days, func(i, j int) bool {
		return snap.Days[i].Day.Before(snap.Days[j].Day)
	})
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal progress snapshot: %w", err)
	}
	return b, nil
}

// decodeDays restores a day map from its durable JSON form. Each record is
// re-keyed through loc so midnight truncation stays consistent with the
// store's calendar.
func decodeDays(data []byte, loc *time.Location) (map[int64]DailyProgress, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal progress snapshot: %w", err)
	}
	days := make(map[int64]DailyProgress, len(snap.Days))
	for _, p := range snap.Days {
		p.Day = startOfDay(p.Day, loc)
		days[p.Day.Unix()] = p
	}
	return days, nil
}
