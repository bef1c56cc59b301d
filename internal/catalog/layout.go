package catalog

import (
	"strings"

	"cod-tracker/internal/domain"
)

const tablePrefix = "cod"

// Layout lists every partition key that must exist, ordered by game mode
// (canonical order), then matches, main, basic, then year.
//
//	mw_mp: matches, main, basic
//	mw_wz: matches, main x 4 years, basic x 4 years
//	cw_mp: matches
//	vg_mp: matches
func Layout() []Key {
	var keys []Key
	for _, g := range domain.GameModes() {
		keys = append(keys, Key{GameMode: g, Source: domain.SourceMatches})
		if !g.SupportsFullmatches() {
			continue
		}
		for _, s := range domain.FullmatchesSubKinds() {
			if !domain.SupportsYear(g, s) {
				keys = append(keys, Key{GameMode: g, Source: s})
				continue
			}
			for _, y := range domain.Years() {
				keys = append(keys, Key{GameMode: g, Source: s, Year: y})
			}
		}
	}
	return keys
}

// TableName returns the canonical storage name of a partition, e.g.
// cod_matches_mw_mp, cod_fullmatches_mw_mp, cod_fullmatches_basic_mw_wz_2021.
func TableName(k Key) string {
	parts := []string{tablePrefix}
	switch k.Source {
	case domain.SourceMatches:
		parts = append(parts, "matches")
	case domain.SourceMain:
		parts = append(parts, "fullmatches")
	case domain.SourceBasic:
		parts = append(parts, "fullmatches", "basic")
	default:
		parts = append(parts, string(k.Source))
	}
	parts = append(parts, string(k.GameMode))
	if k.Year != domain.YearNone {
		parts = append(parts, k.Year.String())
	}
	return strings.Join(parts, "_")
}
