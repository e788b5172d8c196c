package litematic

import (
	"sort"
	"strconv"
	"strings"
)

// palette is the growth-only deduplicated list of block states backing a
// region. Ids are assigned in first-seen order and stay stable for the
// life of the region; id 0 is always the default air state. There is no
// deletion or compaction: a state stays in the palette even when no cell
// references it anymore.
type palette struct {
	states []BlockState
	ids    map[string]uint32 // canonical state key -> id
}

// newPalette returns a palette holding only the default state at id 0.
func newPalette() *palette {
	p := &palette{ids: make(map[string]uint32)}
	p.ensure(Air())
	return p
}

// paletteFrom builds a palette from a hydrated state list, copied verbatim.
// Should the list contain structurally equal duplicates, lookups keep
// resolving every incoming id while ensure reuses the first occurrence.
func paletteFrom(states []BlockState) *palette {
	p := &palette{
		states: make([]BlockState, len(states)),
		ids:    make(map[string]uint32, len(states)),
	}
	copy(p.states, states)
	for i, s := range states {
		key := stateKey(s)
		if _, ok := p.ids[key]; !ok {
			p.ids[key] = uint32(i)
		}
	}
	return p
}

// ensure returns the id of a structurally equal state, appending the state
// with the next free id when none exists yet.
func (p *palette) ensure(s BlockState) uint32 {
	key := stateKey(s)
	if id, ok := p.ids[key]; ok {
		return id
	}
	id := uint32(len(p.states))
	p.states = append(p.states, s)
	p.ids[key] = id
	return id
}

// lookup returns the state for an id. Ids originate from ensure or from
// trusted hydration, so they are always in range.
func (p *palette) lookup(id uint32) BlockState {
	return p.states[id]
}

func (p *palette) len() int {
	return len(p.states)
}

// stateKey builds the canonical equality key for a block state: the name
// followed by the properties in sorted key order, each component written
// as length:value so no name can impersonate a name+properties encoding.
// A nil property map keys identically to an empty one.
func stateKey(s BlockState) string {
	var b strings.Builder
	keyComponent(&b, s.Name)
	if len(s.Properties) == 0 {
		return b.String()
	}
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		keyComponent(&b, k)
		keyComponent(&b, s.Properties[k])
	}
	return b.String()
}

func keyComponent(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}
