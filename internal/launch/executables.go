package launch

import (
	"os"
	"path/filepath"
	"sort"
)

// DefaultExecPaths are the directories scanned for launchable executables
// when the config does not override exec_paths.
var DefaultExecPaths = []string{"/usr/bin", "/bin", "/usr/local/bin", "/usr/sbin", "/sbin"}

// ListExecutables returns the names of executable regular files found in
// the given directories, sorted and de-duplicated. Directories that do not
// exist or cannot be read are skipped.
func ListExecutables(dirs []string) []string {
	seen := make(map[string]struct{})
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, ent := range entries {
			if ent.IsDir() {
				continue
			}
			info, err := os.Stat(filepath.Join(dir, ent.Name()))
			if err != nil {
				continue
			}
			mode := info.Mode()
			if !mode.IsRegular() || mode.Perm()&0111 == 0 {
				continue
			}
			seen[ent.Name()] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
