// Package importer implements the iterative, cycle-tolerant multi-file
// import resolution pass: starting from a root file's own FileResult, it
// pops paths from a deterministically ordered worklist, reads and compiles
// each new one exactly once, and folds its Bindings/Unbinds/Modes into the
// document-ordered accumulation the OverrideResolver later merges.
package importer

import (
	"os"
	"sort"
	"strconv"

	"github.com/sweethkd/hkconf/internal/compile"
	"github.com/sweethkd/hkconf/internal/errors"
	"github.com/sweethkd/hkconf/internal/model"
	"github.com/sweethkd/hkconf/pkg/keyid"
)

const defaultSizeCapMiB = 50

// Result is the document-ordered accumulation of the root file and every
// file reachable from it through `include`, ready for OverrideResolver.
type Result struct {
	Bindings []model.Binding
	Unbinds  []model.Definition
	Modes    []model.Mode
	Imports  []string // every distinct path encountered, in first-seen order
}

// Resolve walks root's import graph to completion. root is the already
// compiled root FileResult (its own Bindings/Unbinds/Modes/Imports).
// resolver is reused for every imported file, since key names resolve the
// same way regardless of which file declared them.
func Resolve(root compile.FileResult, resolver keyid.Resolver) (Result, error) {
	result := Result{
		Bindings: append([]model.Binding{}, root.Bindings...),
		Unbinds:  append([]model.Definition{}, root.Unbinds...),
		Modes:    append([]model.Mode{}, root.Modes...),
	}

	seen := make(map[string]bool)
	queue := append([]string{}, root.Imports...)
	sort.Strings(queue)

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if seen[path] {
			continue
		}
		seen[path] = true
		result.Imports = append(result.Imports, path)

		source, err := ReadConfigFile(path)
		if err != nil {
			return Result{}, err
		}
		fr, err := compile.CompileFile(source, path, resolver)
		if err != nil {
			return Result{}, err
		}
		result.Bindings = append(result.Bindings, fr.Bindings...)
		result.Unbinds = append(result.Unbinds, fr.Unbinds...)
		result.Modes = append(result.Modes, fr.Modes...)

		next := append([]string{}, fr.Imports...)
		sort.Strings(next)
		queue = append(queue, next...)
		sort.Strings(queue)
	}
	return result, nil
}

// sizeCapBytes reads FILESIZE_CAP_MIB at call time (not load time), so a
// single process can run parses under different caps if the environment
// changes between calls; the default matches the spec's 50 MiB.
func sizeCapBytes() int64 {
	mib := defaultSizeCapMiB
	if v := os.Getenv("FILESIZE_CAP_MIB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			mib = n
		}
	}
	return int64(mib) * 1024 * 1024
}

// ReadConfigFile loads path from disk, enforcing that it is a regular file
// within the configured size cap. It is exported so pkg/hkconf's ParseFile
// can apply the identical rule to the root file.
func ReadConfigFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &errors.ConfigReadError{Kind: errors.ReadingConfig, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &errors.ConfigReadError{Kind: errors.NotRegularFile, Path: path}
	}
	if info.Size() > sizeCapBytes() {
		return "", &errors.ConfigReadError{Kind: errors.TooLarge, Path: path}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &errors.ConfigReadError{Kind: errors.ReadingConfig, Path: path, Err: err}
	}
	return string(data), nil
}
