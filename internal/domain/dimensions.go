// Package domain holds the dimension model of the tracker: game titles,
// modes, combined game modes, data sources and seasons, plus the rules that
// say which combinations of them carry data.
package domain

import (
	"fmt"
	"strconv"
)

type GameTitle string

const (
	GameMW  GameTitle = "mw"
	GameCW  GameTitle = "cw"
	GameVG  GameTitle = "vg"
	GameAll GameTitle = "all"
)

type Mode string

const (
	ModeMP  Mode = "mp"
	ModeWZ  Mode = "wz"
	ModeAll Mode = "all"
)

// GameMode is a valid (title, mode) pairing. GameModeAll is the wildcard.
type GameMode string

const (
	GameModeMWMP GameMode = "mw_mp"
	GameModeMWWZ GameMode = "mw_wz"
	GameModeCWMP GameMode = "cw_mp"
	GameModeVGMP GameMode = "vg_mp"
	GameModeAll  GameMode = "all"
)

// Source selects the kind of rows a request targets. SourceMatches, SourceMain
// and SourceBasic are concrete; SourceFullmatches and SourceAll both mean
// "every fullmatches sub-kind".
type Source string

const (
	SourceMatches     Source = "matches"
	SourceMain        Source = "main"
	SourceBasic       Source = "basic"
	SourceFullmatches Source = "fullmatches"
	SourceAll         Source = "all"
)

// Year is a warzone season. YearNone means no year was given.
type Year int

const (
	YearNone Year = 0
	Year2020 Year = 2020
	Year2021 Year = 2021
	Year2022 Year = 2022
	Year2023 Year = 2023
)

type gameModeParts struct {
	game GameTitle
	mode Mode
}

var (
	// canonical order, relied on by MATCHES expansion
	gameModes = []GameMode{GameModeMWMP, GameModeMWWZ, GameModeCWMP, GameModeVGMP}

	// fullmatches expansion order, relied on by display grouping
	fullmatchesGameModes = []GameMode{GameModeMWWZ, GameModeMWMP}

	fullmatchesSubKinds = []Source{SourceMain, SourceBasic}

	years = []Year{Year2020, Year2021, Year2022, Year2023}

	splitTable = map[GameMode]gameModeParts{
		GameModeMWMP: {GameMW, ModeMP},
		GameModeMWWZ: {GameMW, ModeWZ},
		GameModeCWMP: {GameCW, ModeMP},
		GameModeVGMP: {GameVG, ModeMP},
		GameModeAll:  {GameAll, ModeAll},
	}

	joinTable = map[gameModeParts]GameMode{}
)

func init() {
	for _, g := range append(GameModes(), GameModeAll) {
		parts, ok := splitTable[g]
		if !ok {
			panic(fmt.Sprintf("domain: game mode %q has no title/mode entry", g))
		}
		joinTable[parts] = g
	}
}

// GameModes returns the concrete game modes in canonical order.
func GameModes() []GameMode {
	return append([]GameMode(nil), gameModes...)
}

// FullmatchesGameModes returns the game modes that carry fullmatches
// partitions, in the order their results are grouped for display.
func FullmatchesGameModes() []GameMode {
	return append([]GameMode(nil), fullmatchesGameModes...)
}

// FullmatchesSubKinds returns MAIN then BASIC.
func FullmatchesSubKinds() []Source {
	return append([]Source(nil), fullmatchesSubKinds...)
}

// Years returns the supported seasons in ascending order.
func Years() []Year {
	return append([]Year(nil), years...)
}

// Split returns the title and mode of a game mode. GameModeAll splits into
// (GameAll, ModeAll); unknown values split into zero values.
func (g GameMode) Split() (GameTitle, Mode) {
	parts := splitTable[g]
	return parts.game, parts.mode
}

func (g GameMode) IsValid() bool {
	_, ok := splitTable[g]
	return ok
}

func (g GameMode) IsConcrete() bool {
	return g != GameModeAll && g.IsValid()
}

// SupportsFullmatches reports whether g has fullmatches partitions at all.
// Only the MW game modes do; the wildcard is not a game mode that has data.
func (g GameMode) SupportsFullmatches() bool {
	return g == GameModeMWMP || g == GameModeMWWZ
}

// SupportsYear reports whether partitions of (g, s) are split by season.
func SupportsYear(g GameMode, s Source) bool {
	return g == GameModeMWWZ && s.IsFullmatches()
}

// JoinGameMode is the inverse of Split.
func JoinGameMode(game GameTitle, mode Mode) (GameMode, bool) {
	g, ok := joinTable[gameModeParts{game, mode}]
	return g, ok
}

// GameModesFor returns the concrete game modes matching a title and mode,
// either of which may be a wildcard. Pairs that name no game mode (cw/wz)
// match nothing.
func GameModesFor(game GameTitle, mode Mode) []GameMode {
	matched := make([]GameMode, 0, len(gameModes))
	for _, g := range gameModes {
		t, m := g.Split()
		if (game == GameAll || game == t) && (mode == ModeAll || mode == m) {
			matched = append(matched, g)
		}
	}
	return matched
}

func (t GameTitle) IsValid() bool {
	switch t {
	case GameMW, GameCW, GameVG, GameAll:
		return true
	}
	return false
}

// HasFullmatches reports whether any game mode of the title has fullmatches
// partitions.
func (t GameTitle) HasFullmatches() bool {
	return t == GameMW || t == GameAll
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeMP, ModeWZ, ModeAll:
		return true
	}
	return false
}

func (s Source) IsValid() bool {
	switch s {
	case SourceMatches, SourceMain, SourceBasic, SourceFullmatches, SourceAll:
		return true
	}
	return false
}

// IsConcrete reports whether s names exactly one kind of partition.
func (s Source) IsConcrete() bool {
	return s == SourceMatches || s == SourceMain || s == SourceBasic
}

// IsFullmatches reports whether s belongs to the fullmatches family,
// including both wildcards.
func (s Source) IsFullmatches() bool {
	return s == SourceMain || s == SourceBasic || s == SourceFullmatches || s == SourceAll
}

// SubKinds expands s into the concrete sources it covers.
func (s Source) SubKinds() []Source {
	switch s {
	case SourceMatches, SourceMain, SourceBasic:
		return []Source{s}
	case SourceFullmatches, SourceAll:
		return FullmatchesSubKinds()
	}
	return nil
}

func (y Year) IsValid() bool {
	for _, v := range years {
		if y == v {
			return true
		}
	}
	return false
}

func (y Year) String() string {
	if y == YearNone {
		return ""
	}
	return strconv.Itoa(int(y))
}
