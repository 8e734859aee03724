// Package fileutil holds the path eligibility rules used during traversal.
//
// The rules are intentionally small and name-based:
//
//   - Hidden entries are those whose base name starts with ".".
//   - Unless every file type is requested, a file must end with one of the
//     suffixes in AllowedExtensions. The comparison is an exact,
//     case-sensitive suffix match on the base name.
//   - A root-level .gitignore can optionally be honoured. Paths are matched
//     relative to the traversal root.
//
// Usage:
//
//	if fileutil.IsHidden(entry.Name()) && !cfg.IncludeHidden {
//	    continue
//	}
//	if !cfg.AllFiles && !fileutil.HasAllowedExtension(entry.Name()) {
//	    stats.Skipped++
//	}
//
// Nothing in this package touches file contents.
package fileutil
