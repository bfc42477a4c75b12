package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// InputSuffix marks PGN files carrying move time annotations.
	InputSuffix = "_movetimes.pgn"
	// OutputSuffix replaces InputSuffix in the derived report path.
	OutputSuffix = "_clock.txt"
)

// WorkItem pairs a discovered input file with its derived report path.
type WorkItem struct {
	InputPath  string
	OutputPath string
}

// Discover walks the tree rooted at root and returns a work item for every
// regular file whose name ends with InputSuffix, sorted by input path for
// deterministic processing order.
func Discover(root string) ([]WorkItem, error) {
	var items []WorkItem

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path at %q: %w", path, err)
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		if !strings.HasSuffix(d.Name(), InputSuffix) {
			return nil
		}

		items = append(items, WorkItem{InputPath: path, OutputPath: DeriveOutputPath(path)})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].InputPath < items[j].InputPath })

	return items, nil
}

// DeriveOutputPath maps D/B_movetimes.pgn to D/B_clock.txt.
func DeriveOutputPath(inputPath string) string {
	prefix := strings.TrimSuffix(filepath.Base(inputPath), InputSuffix)

	return filepath.Join(filepath.Dir(inputPath), prefix+OutputSuffix)
}
