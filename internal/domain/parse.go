package domain

import (
	"strconv"
	"strings"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ParseGameTitle(s string) (GameTitle, error) {
	t := GameTitle(normalize(s))
	if !t.IsValid() {
		return "", &DimensionError{Dimension: "game", Value: s}
	}
	return t, nil
}

func ParseMode(s string) (Mode, error) {
	m := Mode(normalize(s))
	if !m.IsValid() {
		return "", &DimensionError{Dimension: "mode", Value: s}
	}
	return m, nil
}

func ParseGameMode(s string) (GameMode, error) {
	g := GameMode(normalize(s))
	if !g.IsValid() {
		return "", &DimensionError{Dimension: "game_mode", Value: s}
	}
	return g, nil
}

func ParseSource(s string) (Source, error) {
	src := Source(normalize(s))
	if !src.IsValid() {
		return "", &DimensionError{Dimension: "source", Value: s}
	}
	return src, nil
}

// ParseYear accepts an empty string as YearNone.
func ParseYear(s string) (Year, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return YearNone, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Year(n).IsValid() {
		return YearNone, &DimensionError{Dimension: "year", Value: s}
	}
	return Year(n), nil
}
