package update

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// PickLatestTag selects the highest version-like tag from the list.
// Tags without any digits are ignored; a leading "v" is insignificant.
// Returns "" when nothing looks like a version.
func PickLatestTag(tags []string) string {
	type candidate struct {
		tag     string
		version []int
	}

	var candidates []candidate
	for _, tag := range tags {
		version, ok := parseVersion(tag)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{tag: tag, version: version})
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.Slice(candidates, func(i, j int) bool {
		cmp := compareVersions(candidates[i].version, candidates[j].version)
		if cmp != 0 {
			return cmp < 0
		}
		return candidates[i].tag < candidates[j].tag
	})

	return candidates[len(candidates)-1].tag
}

// parseVersion extracts the numeric spine of a tag: the leading digits
// of each dot-separated field. "v22.3.0" becomes [22 3 0], "19.10b0"
// becomes [19 10].
func parseVersion(tag string) ([]int, bool) {
	trimmed := strings.TrimPrefix(tag, "v")

	var version []int
	for _, field := range strings.Split(trimmed, ".") {
		end := 0
		for end < len(field) && unicode.IsDigit(rune(field[end])) {
			end++
		}
		if end == 0 {
			break
		}
		n, err := strconv.Atoi(field[:end])
		if err != nil {
			break
		}
		version = append(version, n)
	}

	if len(version) == 0 {
		return nil, false
	}
	return version, true
}

func compareVersions(a, b []int) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
