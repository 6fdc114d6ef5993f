package catalog

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
)

// NotFoundError is returned by Get and RandomByFamily when no entry
// satisfies the lookup.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("catalog: not found: %s", e.Query) }

var (
	once     sync.Once
	byName   map[string]Profile
	ordered  []Profile
	byFamily map[Family][]Profile
)

// initCatalog populates the catalog exactly once, in deterministic source order,
// from the data_*.go tables. No locking is required on the read path once
// init has run (§5: the catalog is read-only process-wide state).
func initCatalog() {
	once.Do(func() {
		byName = make(map[string]Profile)
		byFamily = make(map[Family][]Profile)

		all := make([]Profile, 0, 72)
		all = append(all, chromeProfiles()...)
		all = append(all, firefoxProfiles()...)
		all = append(all, safariProfiles()...)
		all = append(all, operaProfiles()...)
		all = append(all, edgeProfiles()...)
		all = append(all, mobileProfiles()...)

		for _, p := range all {
			if _, dup := byName[p.Name]; dup {
				panic("catalog: duplicate profile name " + p.Name)
			}
			byName[p.Name] = p
			ordered = append(ordered, p)
			byFamily[p.Family] = append(byFamily[p.Family], p)
		}
	})
}

// Get performs an exact-name lookup.
func Get(name string) (Profile, error) {
	initCatalog()
	p, ok := byName[name]
	if !ok {
		return Profile{}, &NotFoundError{Query: name}
	}
	return p, nil
}

// ByFamily returns every profile belonging to family, in catalog insertion
// order.
func ByFamily(family Family) []Profile {
	initCatalog()
	out := byFamily[family]
	cp := make([]Profile, len(out))
	copy(cp, out)
	return cp
}

// All returns every registered profile, in catalog insertion order.
func All() []Profile {
	initCatalog()
	cp := make([]Profile, len(ordered))
	copy(cp, ordered)
	return cp
}

// Random returns a uniformly selected profile from the whole catalog.
// Thread-safe: each call draws its own crypto/rand index, no shared mutable
// state beyond the read-only catalog itself.
func Random() Profile {
	initCatalog()
	return ordered[randIndex(len(ordered))]
}

// RandomByFamily returns a uniformly selected profile from family, or
// NotFoundError if the family has no registered entries.
func RandomByFamily(family Family) (Profile, error) {
	initCatalog()
	entries := byFamily[family]
	if len(entries) == 0 {
		return Profile{}, &NotFoundError{Query: family.String()}
	}
	return entries[randIndex(len(entries))], nil
}

// randIndex draws a uniform index in [0, n) from crypto/rand, matching the
// "thread-safe RNG, uniform over eligible entries" contract (§4.4) without
// introducing a shared, lockable math/rand source.
func randIndex(n int) int {
	if n <= 1 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}
