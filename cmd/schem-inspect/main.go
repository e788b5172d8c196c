// Command schem-inspect prints a summary of one or more .litematic files:
// regions, sizes, palette sizes, and block totals, with an optional
// per-state histogram.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/voxelforge/litematic"
)

type config struct {
	histogram bool
	top       int
	maxVolume uint
}

func main() {
	cfg := config{}
	flag.BoolVar(&cfg.histogram, "histogram", false, "print a per-state block histogram for each region")
	flag.IntVar(&cfg.top, "top", 0, "limit the histogram to the N most common states (0 = all)")
	flag.UintVar(&cfg.maxVolume, "max-volume", litematic.DefaultMaxRegionVolume, "region volume limit, 0 to disable")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.litematic...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	reports := make([]string, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			report, err := inspect(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, report := range reports {
		fmt.Print(report)
	}
}

func inspect(path string, cfg config) (string, error) {
	l, err := litematic.ReadFile(path, litematic.WithMaxRegionVolume(uint32(cfg.maxVolume)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", path)
	fmt.Fprintf(&b, "  name=%q author=%q data-version=%d regions=%d\n",
		l.Name, l.Author, l.DataVersion, len(l.Regions))
	if desc := l.Description; desc != "" {
		fmt.Fprintf(&b, "  description=%q\n", desc)
	}
	enc := l.EnclosingSize()
	fmt.Fprintf(&b, "  enclosing=%dx%dx%d volume=%d blocks=%d\n",
		enc.X, enc.Y, enc.Z, l.TotalVolume(), l.TotalBlocks())

	for _, r := range l.Regions {
		size := r.Size()
		fmt.Fprintf(&b, "  region %q: %dx%dx%d at %s, palette=%d, blocks=%d, tiles=%d, entities=%d\n",
			r.Name, size.X, size.Y, size.Z, r.Min(),
			r.PaletteLen(), r.TotalBlocks(), len(r.TileEntities()), len(r.Entities))
		if cfg.histogram {
			writeHistogram(&b, r, cfg.top)
		}
	}
	return b.String(), nil
}

func writeHistogram(b *strings.Builder, r *litematic.Region, top int) {
	counts := make(map[string]int)
	for _, state := range r.Blocks() {
		counts[state.String()]++
	}

	type entry struct {
		state string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for state, count := range counts {
		entries = append(entries, entry{state, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].state < entries[j].state
	})
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}

	for _, e := range entries {
		fmt.Fprintf(b, "    %10d  %s\n", e.count, e.state)
	}
}
