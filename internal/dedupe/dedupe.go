// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent loads. Only one load runs for a given key while other callers
// wait for its result.
package dedupe

import "golang.org/x/sync/singleflight"

// ProgressGroup deduplicates progress store loads keyed by the namespaced
// profile key (e.g. "card-battle-progress:arthur").
var ProgressGroup singleflight.Group

// CatalogGroup deduplicates catalog file reads keyed by file path.
var CatalogGroup singleflight.Group
