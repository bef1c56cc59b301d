// Package resolver turns a possibly wildcarded request over game mode, source
// and year into the ordered list of partitions that must be read.
//
// Every wildcard is expanded by an explicit rule rather than a cross product
// of all dimension values, because the partition space is not rectangular:
// only MW has fullmatches partitions and only MW warzone splits them by year.
// Each rule produces a key set disjoint from the others, so results never
// contain the same partition twice.
//
// Combinations that are well formed but have no data (cw_mp fullmatches, for
// instance) resolve to an empty list, not an error.
package resolver

import (
	"cod-tracker/internal/catalog"
	"cod-tracker/internal/domain"
)

// Resolver is safe for concurrent use; it only reads its catalog.
type Resolver[H any] struct {
	catalog *catalog.Catalog[H]
}

func New[H any](c *catalog.Catalog[H]) *Resolver[H] {
	return &Resolver[H]{catalog: c}
}

// Resolve returns the partitions selected by a game mode (or
// domain.GameModeAll), a source (concrete, or one of the fullmatches
// wildcards) and an optional year.
//
// Ordering:
//   - matches over all game modes: mw_mp, mw_wz, cw_mp, vg_mp
//   - fullmatches over all game modes: every mw_wz partition, then mw_mp
//   - within a game mode: main before basic, then ascending year
func (r *Resolver[H]) Resolve(g domain.GameMode, s domain.Source, y domain.Year) []catalog.PartitionRef[H] {
	refs := make([]catalog.PartitionRef[H], 0)
	switch {
	case s == domain.SourceMatches:
		return r.resolveMatches(refs, g)
	case s.IsFullmatches():
		return r.resolveFullmatches(refs, g, s, y)
	}
	return refs
}

// Matches partitions have neither sub-kind nor year.
func (r *Resolver[H]) resolveMatches(refs []catalog.PartitionRef[H], g domain.GameMode) []catalog.PartitionRef[H] {
	if g == domain.GameModeAll {
		for _, concrete := range domain.GameModes() {
			refs = r.appendLookup(refs, concrete, domain.SourceMatches, domain.YearNone)
		}
		return refs
	}
	return r.appendLookup(refs, g, domain.SourceMatches, domain.YearNone)
}

func (r *Resolver[H]) resolveFullmatches(refs []catalog.PartitionRef[H], g domain.GameMode, s domain.Source, y domain.Year) []catalog.PartitionRef[H] {
	switch g {
	case domain.GameModeAll:
		// mw_wz block first, then mw_mp
		for _, concrete := range domain.FullmatchesGameModes() {
			refs = r.resolveFullmatches(refs, concrete, s, y)
		}
	case domain.GameModeMWMP:
		// one partition per sub-kind, no year dimension
		for _, sub := range s.SubKinds() {
			refs = r.appendLookup(refs, domain.GameModeMWMP, sub, domain.YearNone)
		}
	case domain.GameModeMWWZ:
		// one partition per sub-kind and year; no year means every year
		for _, sub := range s.SubKinds() {
			if y != domain.YearNone {
				refs = r.appendLookup(refs, domain.GameModeMWWZ, sub, y)
				continue
			}
			for _, year := range domain.Years() {
				refs = r.appendLookup(refs, domain.GameModeMWWZ, sub, year)
			}
		}
	}
	// cw_mp and vg_mp have no fullmatches partitions
	return refs
}

func (r *Resolver[H]) appendLookup(refs []catalog.PartitionRef[H], g domain.GameMode, s domain.Source, y domain.Year) []catalog.PartitionRef[H] {
	if ref, ok := r.catalog.Lookup(g, s, y); ok {
		refs = append(refs, ref)
	}
	return refs
}

// ResolveTitle is Resolve addressed by title and mode instead of game mode;
// either may be a wildcard. A fully wildcarded request is exactly
// Resolve(domain.GameModeAll, ...). Partial wildcards keep the same group
// ordering as Resolve: canonical for matches, mw_wz before mw_mp for
// fullmatches.
func (r *Resolver[H]) ResolveTitle(game domain.GameTitle, mode domain.Mode, s domain.Source, y domain.Year) []catalog.PartitionRef[H] {
	if game == domain.GameAll && mode == domain.ModeAll {
		return r.Resolve(domain.GameModeAll, s, y)
	}

	order := domain.GameModes()
	if s.IsFullmatches() {
		order = domain.FullmatchesGameModes()
	}
	matched := make(map[domain.GameMode]bool)
	for _, g := range domain.GameModesFor(game, mode) {
		matched[g] = true
	}

	refs := make([]catalog.PartitionRef[H], 0)
	for _, g := range order {
		if matched[g] {
			refs = append(refs, r.Resolve(g, s, y)...)
		}
	}
	return refs
}

// ResolvePreferred picks the richest source a title has: fullmatches (both
// sub-kinds) for titles with fullmatches partitions, matches otherwise.
func (r *Resolver[H]) ResolvePreferred(game domain.GameTitle, mode domain.Mode, y domain.Year) []catalog.PartitionRef[H] {
	if game.HasFullmatches() {
		return r.ResolveTitle(game, mode, domain.SourceAll, y)
	}
	return r.ResolveTitle(game, mode, domain.SourceMatches, y)
}

// Request carries either a game mode, or a title and mode pair when GameMode
// is empty.
type Request struct {
	GameMode domain.GameMode
	Game     domain.GameTitle
	Mode     domain.Mode
	Source   domain.Source
	Year     domain.Year
}

func (r *Resolver[H]) ResolveRequest(req Request) []catalog.PartitionRef[H] {
	if req.GameMode != "" {
		return r.Resolve(req.GameMode, req.Source, req.Year)
	}
	game, mode := req.Game, req.Mode
	if game == "" {
		game = domain.GameAll
	}
	if mode == "" {
		mode = domain.ModeAll
	}
	return r.ResolveTitle(game, mode, req.Source, req.Year)
}

// Label names the requested game mode, or title_mode when addressed by title.
func (req Request) Label() string {
	if req.GameMode != "" {
		return string(req.GameMode)
	}
	game, mode := req.Game, req.Mode
	if game == "" {
		game = domain.GameAll
	}
	if mode == "" {
		mode = domain.ModeAll
	}
	return string(game) + "_" + string(mode)
}
