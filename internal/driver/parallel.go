package driver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"lumen/internal/project"
)

// FileInput is one source file to be hashed ahead of a check run.
type FileInput struct {
	Path    string
	Content []byte
}

// HashFiles computes each input's content digest concurrently. Hashing is
// the one stage of a check run with no shared state to protect — every
// goroutine only ever touches its own input and writes to its own result
// slot — so it is the one stage Lumen actually parallelizes with
// errgroup, the way the teacher's front end parallelizes independent
// per-file work before the shared symbol table comes into play.
func HashFiles(ctx context.Context, jobs int, inputs []FileInput) (map[string]project.Digest, error) {
	if len(inputs) == 0 {
		return map[string]project.Digest{}, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	digests := make([]project.Digest, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			digests[i] = project.HashBytes(in.Content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]project.Digest, len(inputs))
	for i, in := range inputs {
		out[in.Path] = digests[i]
	}
	return out, nil
}

// CombineDigests folds a manifest digest together with every file digest
// into the single key a Cache entry is stored under. Paths are sorted first
// so the result does not depend on map iteration order.
func CombineDigests(manifest project.Digest, perFile map[string]project.Digest) project.Digest {
	paths := make([]string, 0, len(perFile))
	for p := range perFile {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	deps := make([]project.Digest, 0, len(paths))
	for _, p := range paths {
		deps = append(deps, perFile[p])
	}
	return project.Combine(manifest, deps...)
}
