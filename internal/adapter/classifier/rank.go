package classifier

import (
	"fmt"
	"sort"
)

// rankModel scores texts with the classic out-of-place n-gram rank
// distance. It has no calibrated probabilities, so it only yields a label.
type rankModel struct {
	art *Artifact

	// rank position of each n-gram per class, built once at load.
	ranks map[string]map[string]int
}

func newRankModel(art *Artifact) *rankModel {
	ranks := make(map[string]map[string]int, len(art.Profiles))
	for class, profile := range art.Profiles {
		pos := make(map[string]int, len(profile))
		for i, gram := range profile {
			pos[gram] = i
		}
		ranks[class] = pos
	}
	return &rankModel{art: art, ranks: ranks}
}

func (m *rankModel) Classes() []string {
	return m.art.Classes
}

// Predict returns the class whose training profile is closest to the
// document's n-gram frequency profile. Ties resolve to the lowest class
// index.
func (m *rankModel) Predict(text string) (string, error) {
	grams := extractNgrams(text, m.art.NgramMin, m.art.NgramMax)
	if len(grams) == 0 {
		return "", fmt.Errorf("input shorter than minimum n-gram length %d", m.art.NgramMin)
	}

	profile := documentProfile(grams)

	best := 0
	bestDist := -1
	for i, class := range m.art.Classes {
		dist := m.outOfPlace(profile, class)
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return m.art.Classes[best], nil
}

func (m *rankModel) outOfPlace(profile []string, class string) int {
	ranks := m.ranks[class]
	// An n-gram missing from the class profile costs the maximum
	// displacement.
	maxDisp := len(ranks)

	dist := 0
	for docRank, gram := range profile {
		classRank, ok := ranks[gram]
		if !ok {
			dist += maxDisp
			continue
		}
		if d := docRank - classRank; d < 0 {
			dist -= d
		} else {
			dist += d
		}
	}
	return dist
}

// documentProfile orders the document's n-grams by descending frequency,
// breaking frequency ties lexicographically so the profile is
// deterministic.
func documentProfile(grams []string) []string {
	counts := make(map[string]int, len(grams))
	for _, g := range grams {
		counts[g]++
	}

	profile := make([]string, 0, len(counts))
	for g := range counts {
		profile = append(profile, g)
	}
	sort.Slice(profile, func(i, j int) bool {
		if counts[profile[i]] != counts[profile[j]] {
			return counts[profile[i]] > counts[profile[j]]
		}
		return profile[i] < profile[j]
	})
	return profile
}
