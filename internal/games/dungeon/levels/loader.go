package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/config"
)

//go:embed data/*.lev
var builtin embed.FS

// candidateNames are tried in order when loading level n.
var candidateNames = []string{"level-%d.lev", "level-%d.yaml", "level-%d.yml", "level-%d"}

var fileNumber = regexp.MustCompile(`^level-(\d+)(\.lev|\.ya?ml)?$`)

// Entry describes a level file found by List.
type Entry struct {
	Number int
	File   string
}

// Loader reads levels from a filesystem.
type Loader struct {
	fsys   fs.FS
	source string
}

// NewLoader creates a loader over fsys. source names the filesystem in
// error messages.
func NewLoader(fsys fs.FS, source string) *Loader {
	return &Loader{fsys: fsys, source: source}
}

// Builtin returns a loader for the embedded level set.
func Builtin() *Loader {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded data missing: %v", err))
	}
	return NewLoader(sub, "builtin")
}

// Dir returns a loader for a directory on disk.
func Dir(dir string) *Loader {
	return NewLoader(os.DirFS(dir), dir)
}

// FromConfig returns a directory loader when a levels dir is configured,
// and the built-in set otherwise.
func FromConfig(cfg config.LevelsConfig) *Loader {
	if cfg.Dir != "" {
		return Dir(cfg.Dir)
	}
	return Builtin()
}

// Source names where levels are read from.
func (l *Loader) Source() string {
	return l.source
}

// Load reads level n, trying each supported file name in turn.
func (l *Loader) Load(n int) (*Level, error) {
	for _, pattern := range candidateNames {
		name := fmt.Sprintf(pattern, n)
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s/%s: %w", l.source, name, err)
		}

		lvl, err := parseByExtension(name, data)
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s/%s: %w", l.source, name, err)
		}
		lvl.Number = n
		lvl.FilePath = name
		return lvl, nil
	}
	return nil, fmt.Errorf("levels: level %d in %s: %w", n, l.source, ErrNotFound)
}

// LoadAll loads levels 1 through count. Any missing or invalid level is
// an error.
func (l *Loader) LoadAll(count int) ([]*Level, error) {
	out := make([]*Level, 0, count)
	for n := 1; n <= count; n++ {
		lvl, err := l.Load(n)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

// List returns every level file in the filesystem root, sorted by number.
// When a number has several files, the one Load would pick is listed.
func (l *Loader) List() ([]Entry, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: listing %s: %w", l.source, err)
	}

	byNumber := make(map[int]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := fileNumber.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if prev, ok := byNumber[n]; !ok || preference(e.Name()) < preference(prev) {
			byNumber[n] = e.Name()
		}
	}

	list := make([]Entry, 0, len(byNumber))
	for n, file := range byNumber {
		list = append(list, Entry{Number: n, File: file})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Number < list[j].Number
	})
	return list, nil
}

// preference ranks a file name by its position in candidateNames.
func preference(name string) int {
	ext := path.Ext(name)
	for i, pattern := range candidateNames {
		if path.Ext(pattern) == ext {
			return i
		}
	}
	return len(candidateNames)
}

// parseByExtension routes to the correct parser.
func parseByExtension(name string, data []byte) (*Level, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".lev", "":
		return Parse(name, data)
	case ".yaml", ".yml":
		return ParseYAML(name, data)
	default:
		return nil, fmt.Errorf("%s: %w: %s", name, ErrUnsupportedFormat, ext)
	}
}
