package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/veloxlabs/dexmodel/classset"
	"github.com/veloxlabs/dexmodel/descriptor"
	"github.com/veloxlabs/dexmodel/dex"
	"github.com/veloxlabs/dexmodel/errors"
	"github.com/veloxlabs/dexmodel/footprint"
	"github.com/veloxlabs/dexmodel/hierarchy"
)

func main() {
	var (
		classesFile = flag.String("classes", "", "Path to class-set JSON file")
		list        = flag.Bool("list", false, "Print the class hierarchy and exit")
		castQuery   = flag.String("cast", "", "Check assignability: \"Lsrc; Ldst;\"")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *classesFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: dexview -classes <set.json> [-list]")
		fmt.Fprintln(os.Stderr, "       dexview -classes <set.json> -cast \"Lsrc; Ldst;\"")
		fmt.Fprintln(os.Stderr, "       dexview -classes <set.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*classesFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*classesFile, *castQuery, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(classesFile, castQuery string, list bool) error {
	pool := descriptor.NewPool()

	classes, err := classset.LoadFile(classesFile, pool)
	if err != nil {
		return fmt.Errorf("load %s: %w", classesFile, err)
	}

	idx := hierarchy.New(pool)
	if err := classset.Populate(idx, classes); err != nil {
		return fmt.Errorf("populate index: %w", err)
	}

	fmt.Printf("Class set: %s\n", classesFile)
	fmt.Printf("Classes: %d\n", idx.Size())
	fmt.Printf("Descriptors interned: %d\n", pool.Size())

	if castQuery != "" {
		return runCast(pool, idx, castQuery)
	}

	if list {
		printHierarchy(pool, idx, classes)
	}
	return nil
}

func runCast(pool *descriptor.Pool, idx *hierarchy.Index, query string) error {
	parts := strings.Fields(query)
	if len(parts) != 2 {
		return fmt.Errorf("cast query must be two descriptors, got %q", query)
	}
	src, err := pool.Intern(parts[0])
	if err != nil {
		return err
	}
	dst, err := pool.Intern(parts[1])
	if err != nil {
		return err
	}
	// A cast from an unindexed source is always false (except to itself);
	// telling the user the class is outside the set beats a bare "false".
	if _, ok := idx.Lookup(src); !ok && src != dst {
		return errors.NotFound(errors.PhaseQuery, "class", src.Name())
	}
	fmt.Printf("\n%s -> %s: %v\n", src, dst, idx.IsAssignable(src, dst))
	return nil
}

func visibilityName(flags dex.AccessFlags) string {
	switch flags & dex.VisibilityMask {
	case dex.AccPublic:
		return "public"
	case dex.AccPrivate:
		return "private"
	case dex.AccProtected:
		return "protected"
	default:
		return "package"
	}
}

func printHierarchy(pool *descriptor.Pool, idx *hierarchy.Index, classes []*dex.Class) {
	width := 100
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	fmt.Printf("\nHierarchy:\n")
	for _, root := range hierarchyRoots(idx, classes) {
		printSubtree(idx, root, 0, width)
	}
}

// hierarchyRoots returns the forest roots in a stable order: the object
// root first, then every registered class whose superclass is outside the
// indexed set.
func hierarchyRoots(idx *hierarchy.Index, classes []*dex.Class) []*descriptor.Type {
	var roots []*descriptor.Type
	seen := make(map[*descriptor.Type]bool)
	for _, cls := range classes {
		super := cls.SuperType
		if super == nil {
			// A registered root object type heads its own subtree.
			if !seen[cls.Type] {
				seen[cls.Type] = true
				roots = append(roots, cls.Type)
			}
			continue
		}
		if _, ok := idx.Lookup(super); !ok && !seen[super] {
			seen[super] = true
			roots = append(roots, super)
		}
	}
	sort.Slice(roots, func(i, j int) bool {
		if a, b := roots[i].Name(), roots[j].Name(); a != b {
			// Keep the object root at the front.
			if a == "Ljava/lang/Object;" {
				return true
			}
			if b == "Ljava/lang/Object;" {
				return false
			}
			return a < b
		}
		return false
	})
	return roots
}

func printSubtree(idx *hierarchy.Index, t *descriptor.Type, depth, width int) {
	line := strings.Repeat("  ", depth) + t.Name()
	if cls, ok := idx.Lookup(t); ok {
		kind := "class"
		if cls.IsInterface() {
			kind = "interface"
		}
		line += fmt.Sprintf("  [%s %s, cost %d]",
			visibilityName(cls.Visibility()), kind, footprint.Estimate(cls))
	} else {
		line += "  [external]"
	}
	if len(line) > width {
		line = line[:width]
	}
	fmt.Println(line)

	for _, child := range idx.ChildrenOf(t) {
		printSubtree(idx, child, depth+1, width)
	}
}
