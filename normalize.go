package patalg

import (
	"path"
	"strings"
)

// NormalizeOptions supplies the context a relative, tilde-prefixed, or
// project-root-relative path needs to become an absolute, forward-slash
// form before it is matched against a compiled pattern.
type NormalizeOptions struct {
	HomeDir     string // substituted for a leading ~ (spec.md §4: path input only)
	Cwd         string // base for a path that does not start with /
	ProjectRoot string // base for a path with a leading // (optional, spec.md §6)
}

// NormalizePath turns path into a normalized absolute form: backslashes
// become forward slashes (the WithSwapSlashes idiom, always applied here
// since the algebra operates on a single slash convention regardless of
// host OS), ~, //, and relative paths are resolved against opts, and
// "."/".."/duplicate slashes/trailing slashes are cleaned away.
//
// A leading // denotes a path relative to opts.ProjectRoot rather than the
// filesystem root, the same way a leading ~ denotes one relative to
// opts.HomeDir — spec.md §6's {homeDir, cwd, projectRoot?} context names
// projectRoot as optional, so an empty ProjectRoot just resolves // against
// "/" like any other leading slash.
func NormalizePath(p string, opts NormalizeOptions) string {
	p = strings.ReplaceAll(p, "\\", "/")

	switch {
	case p == "~":
		p = opts.HomeDir
	case strings.HasPrefix(p, "~/"):
		p = strings.TrimSuffix(opts.HomeDir, "/") + "/" + p[2:]
	case p == "//":
		p = strings.TrimSuffix(opts.ProjectRoot, "/") + "/"
	case strings.HasPrefix(p, "//"):
		p = strings.TrimSuffix(opts.ProjectRoot, "/") + "/" + strings.TrimPrefix(p, "//")
	}

	if !strings.HasPrefix(p, "/") {
		base := opts.Cwd
		if base == "" {
			base = "/"
		}
		p = strings.TrimSuffix(base, "/") + "/" + p
	}

	cleaned := path.Clean(p)
	if cleaned == "." {
		return "/"
	}
	return cleaned
}
