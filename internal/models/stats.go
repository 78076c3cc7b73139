package models

import "sort"

// GroupCount is one bucket of a group-by aggregation.
type GroupCount struct {
	Key   string `json:"_id"`
	Count int64  `json:"count"`
}

type EventStats struct {
	TotalEvents        int64        `json:"totalEvents"`
	UpcomingEvents     int64        `json:"upcomingEvents"`
	PastEvents         int64        `json:"pastEvents"`
	CategoryStats      []GroupCount `json:"categoryStats"`
	TotalRegistrations int64        `json:"totalRegistrations"`
}

type MemberStats struct {
	TotalMembers   int64        `json:"totalMembers"`
	PendingMembers int64        `json:"pendingMembers"`
	InterestStats  []GroupCount `json:"interestStats"`
	YearStats      []GroupCount `json:"yearStats"`
}

type NewsletterStats struct {
	TotalSubscribers  int64        `json:"totalSubscribers"`
	TotalUnsubscribed int64        `json:"totalUnsubscribed"`
	SourceStats       []GroupCount `json:"sourceStats"`
}

type ContactStats struct {
	TotalContacts int64        `json:"totalContacts"`
	NewContacts   int64        `json:"newContacts"`
	TypeStats     []GroupCount `json:"typeStats"`
	StatusStats   []GroupCount `json:"statusStats"`
}

// Tally groups keys and orders buckets by count, largest first. Ties are ordered by key.
func Tally(keys []string) []GroupCount {
	counts := make(map[string]int64, len(keys))
	for _, k := range keys {
		counts[k]++
	}

	groups := make([]GroupCount, 0, len(counts))
	for k, c := range counts {
		groups = append(groups, GroupCount{Key: k, Count: c})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})

	return groups
}

// SortByKey orders buckets by key ascending.
func SortByKey(groups []GroupCount) []GroupCount {
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}
