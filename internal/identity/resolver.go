package identity

import (
	"go.uber.org/zap"
)

// Map is the breed identity map: canonical breed name -> external asset
// key (a folder name in the photo repository). The map may be incomplete;
// a missing entry means "no asset available" for that breed.
type Map map[string]string

// BuildMap reconciles the canonical breed names with the external folder
// listing in two passes. Pass one normalizes both sides and records the
// first exact normalized match, keyed by the original canonical name and
// valued with the original folder name. Pass two applies the curated
// override table unconditionally — an override replaces an automatic match
// for the same key (last write wins).
//
// BuildMap is deterministic and idempotent: identical inputs always yield
// an identical map, so it is safe to rebuild on every process start.
func BuildMap(canonical []string, folders []string, overrides map[string]string, log *zap.Logger) Map {
	if log == nil {
		log = zap.NewNop()
	}

	// Index folders by normalized form. First folder wins on a normalized
	// collision so iteration order of the listing cannot change the result.
	normFolders := make(map[string]string, len(folders))
	for _, folder := range folders {
		norm := Normalize(folder)
		if _, exists := normFolders[norm]; !exists {
			normFolders[norm] = folder
		}
	}

	m := make(Map, len(canonical))
	var unmatched []string
	for _, name := range canonical {
		if folder, ok := normFolders[Normalize(name)]; ok {
			m[name] = folder
		} else {
			unmatched = append(unmatched, name)
		}
	}

	for name, key := range overrides {
		m[name] = key
	}

	if len(unmatched) > 0 {
		still := 0
		for _, name := range unmatched {
			if _, ok := m[name]; !ok {
				still++
				log.Debug("breed has no asset mapping", zap.String("breed", name))
			}
		}
		log.Info("breed identity map built",
			zap.Int("canonical", len(canonical)),
			zap.Int("folders", len(folders)),
			zap.Int("mapped", len(m)),
			zap.Int("unresolved", still))
	}

	return m
}

// Unresolved returns the canonical names that have no entry in the map, in
// input order. Useful for auditing the override table.
func (m Map) Unresolved(canonical []string) []string {
	var missing []string
	for _, name := range canonical {
		if _, ok := m[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
