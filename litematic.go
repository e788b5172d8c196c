package litematic

import (
	"fmt"
	"sort"
	"time"
)

// Format constants. FormatVersion 6 is the layout written by current
// litematica releases; SubVersion was introduced alongside it.
const (
	FormatVersion    = 6
	FormatSubVersion = 1

	// DefaultDataVersion is the Minecraft data version stamped on new
	// schematics (1.20.4). Override via the DataVersion field.
	DefaultDataVersion = 3700
)

// Litematic is a schematic: one or more named regions plus descriptive
// metadata. It maps one-to-one onto a .litematic file.
type Litematic struct {
	Name        string
	Description string
	Author      string

	// DataVersion is the Minecraft data version the block states are
	// expressed in. It is carried through unchanged; this library does
	// not migrate states between versions.
	DataVersion int32

	// Regions holds the schematic's regions in a stable order: insertion
	// order for built schematics, name order for read ones.
	Regions []*Region

	timeCreated int64 // ms epoch; zero until first written or read
}

// New creates an empty schematic with the given metadata.
func New(name, description, author string) *Litematic {
	return &Litematic{
		Name:        name,
		Description: description,
		Author:      author,
		DataVersion: DefaultDataVersion,
	}
}

// TimeCreated returns the creation timestamp, or the zero time for a
// schematic that has never been written or read.
func (l *Litematic) TimeCreated() time.Time {
	if l.timeCreated == 0 {
		return time.Time{}
	}
	return time.UnixMilli(l.timeCreated)
}

// TotalBlocks returns the number of non-air cells across all regions.
func (l *Litematic) TotalBlocks() int {
	n := 0
	for _, r := range l.Regions {
		n += r.TotalBlocks()
	}
	return n
}

// TotalVolume returns the combined cell count of all regions.
func (l *Litematic) TotalVolume() int {
	n := 0
	for _, r := range l.Regions {
		n += int(r.Volume())
	}
	return n
}

// EnclosingSize returns the extent of the axis-aligned bounding box around
// all regions, or the zero vector for a schematic without regions.
func (l *Litematic) EnclosingSize() UVec3 {
	if len(l.Regions) == 0 {
		return UVec3{}
	}
	lo, hi := l.Regions[0].Min(), l.Regions[0].Max()
	for _, r := range l.Regions[1:] {
		rMin, rMax := r.Min(), r.Max()
		lo = Vec3{X: min(lo.X, rMin.X), Y: min(lo.Y, rMin.Y), Z: min(lo.Z, rMin.Z)}
		hi = Vec3{X: max(hi.X, rMax.X), Y: max(hi.Y, rMax.Y), Z: max(hi.Z, rMax.Z)}
	}
	return lo.SizeTo(hi)
}

// toNBT assembles the root compound, deriving the metadata totals from the
// regions. now is the modification timestamp in ms.
func (l *Litematic) toNBT(now int64) rawLitematic {
	created := l.timeCreated
	if created == 0 {
		created = now
	}

	enclosing := l.EnclosingSize()
	raw := rawLitematic{
		Version:              FormatVersion,
		SubVersion:           FormatSubVersion,
		MinecraftDataVersion: l.DataVersion,
		Metadata: rawMetadata{
			Name:          l.Name,
			Description:   l.Description,
			Author:        l.Author,
			TimeCreated:   created,
			TimeModified:  now,
			TotalBlocks:   int32(l.TotalBlocks()),
			TotalVolume:   int32(l.TotalVolume()),
			RegionCount:   int32(len(l.Regions)),
			EnclosingSize: Vec3{X: int32(enclosing.X), Y: int32(enclosing.Y), Z: int32(enclosing.Z)},
		},
		Regions: make(map[string]RawRegion, len(l.Regions)),
	}
	for _, r := range l.Regions {
		raw.Regions[r.Name] = r.ToRaw()
	}
	return raw
}

// litematicFromNBT hydrates a schematic from the root compound. Regions
// come back in name order; a single malformed region fails the whole read.
func litematicFromNBT(raw rawLitematic, cfg readConfig) (*Litematic, error) {
	l := &Litematic{
		Name:        raw.Metadata.Name,
		Description: raw.Metadata.Description,
		Author:      raw.Metadata.Author,
		DataVersion: raw.MinecraftDataVersion,
		Regions:     make([]*Region, 0, len(raw.Regions)),
		timeCreated: raw.Metadata.TimeCreated,
	}

	names := make([]string, 0, len(raw.Regions))
	for name := range raw.Regions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r, err := regionFromNBT(name, raw.Regions[name], cfg.maxRegionVolume)
		if err != nil {
			return nil, err
		}
		cfg.log().Debug("decoded region",
			"region", name,
			"size", r.Size().String(),
			"palette", r.PaletteLen(),
			"blocks", r.TotalBlocks())
		l.Regions = append(l.Regions, r)
	}
	return l, nil
}

// Region returns the region with the given name, or an error when the
// schematic has no such region.
func (l *Litematic) Region(name string) (*Region, error) {
	for _, r := range l.Regions {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("litematic: no region named %q", name)
}
