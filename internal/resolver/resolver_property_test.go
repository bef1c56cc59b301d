package resolver

import (
	"reflect"
	"testing"

	"cod-tracker/internal/catalog"
	"cod-tracker/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genGameMode() gopter.Gen {
	return gen.OneConstOf(
		domain.GameModeMWMP, domain.GameModeMWWZ, domain.GameModeCWMP, domain.GameModeVGMP, domain.GameModeAll,
	)
}

func genSource() gopter.Gen {
	return gen.OneConstOf(
		domain.SourceMatches, domain.SourceMain, domain.SourceBasic, domain.SourceFullmatches, domain.SourceAll,
	)
}

func genYear() gopter.Gen {
	return gen.OneConstOf(
		domain.YearNone, domain.Year2020, domain.Year2021, domain.Year2022, domain.Year2023,
	)
}

func TestProperty_ResolveInvariants(t *testing.T) {
	r := newTestResolver(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("never returns the same partition twice", prop.ForAll(
		func(g domain.GameMode, s domain.Source, y domain.Year) bool {
			seen := map[catalog.Key]bool{}
			for _, ref := range r.Resolve(g, s, y) {
				if seen[ref.Key()] {
					return false
				}
				seen[ref.Key()] = true
			}
			return true
		},
		genGameMode(), genSource(), genYear(),
	))

	properties.Property("refs are concrete and match the request", prop.ForAll(
		func(g domain.GameMode, s domain.Source, y domain.Year) bool {
			for _, ref := range r.Resolve(g, s, y) {
				if !ref.GameMode.IsConcrete() || !ref.Source.IsConcrete() {
					return false
				}
				if g != domain.GameModeAll && ref.GameMode != g {
					return false
				}
				if s.IsConcrete() && ref.Source != s {
					return false
				}
				if s.IsFullmatches() && ref.Source == domain.SourceMatches {
					return false
				}
				if ref.Year != domain.YearNone && y != domain.YearNone && ref.Year != y {
					return false
				}
				if (ref.Year != domain.YearNone) != domain.SupportsYear(ref.GameMode, ref.Source) {
					return false
				}
				if ref.CatalogName != catalog.TableName(ref.Key()) || ref.Handle.table != ref.CatalogName {
					return false
				}
			}
			return true
		},
		genGameMode(), genSource(), genYear(),
	))

	properties.Property("resolution is idempotent", prop.ForAll(
		func(g domain.GameMode, s domain.Source, y domain.Year) bool {
			return reflect.DeepEqual(r.Resolve(g, s, y), r.Resolve(g, s, y))
		},
		genGameMode(), genSource(), genYear(),
	))

	properties.Property("the wildcard game mode is the union of concrete ones", prop.ForAll(
		func(s domain.Source, y domain.Year) bool {
			all := r.Resolve(domain.GameModeAll, s, y)
			total := 0
			for _, g := range domain.GameModes() {
				total += len(r.Resolve(g, s, y))
			}
			return len(all) == total
		},
		genSource(), genYear(),
	))

	properties.TestingRun(t)
}
