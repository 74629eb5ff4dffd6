package compare

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Result partitions the union of both trees' relative paths. Every path
// lands in exactly one of ProOnly, DevOnly, Modified, TypeMismatch, or
// the identical count.
type Result struct {
	ProRoot string
	DevRoot string

	ProOnly      []string
	DevOnly      []string
	Modified     []string
	TypeMismatch []string
	Identical    int
}

// Compare classifies every relative path under the two roots. Both roots
// must exist as directories; nothing is traversed otherwise.
func Compare(proRoot, devRoot string) (*Result, error) {
	if err := checkRoot(proRoot); err != nil {
		return nil, err
	}
	if err := checkRoot(devRoot); err != nil {
		return nil, err
	}

	proPaths, err := Scan(proRoot)
	if err != nil {
		return nil, err
	}
	devPaths, err := Scan(devRoot)
	if err != nil {
		return nil, err
	}

	res := &Result{ProRoot: proRoot, DevRoot: devRoot}

	for _, rel := range sortedUnion(proPaths, devPaths) {
		_, inPro := proPaths[rel]
		_, inDev := devPaths[rel]

		switch {
		case inPro && inDev:
			equal, err := equalContents(
				filepath.Join(proRoot, filepath.FromSlash(rel)),
				filepath.Join(devRoot, filepath.FromSlash(rel)),
			)
			if err != nil {
				return nil, err
			}
			if equal {
				res.Identical++
			} else {
				res.Modified = append(res.Modified, rel)
			}

		case inPro:
			if existsAsDirectory(devRoot, rel) {
				res.TypeMismatch = append(res.TypeMismatch, rel)
			} else {
				res.ProOnly = append(res.ProOnly, rel)
			}

		default:
			if existsAsDirectory(proRoot, rel) {
				res.TypeMismatch = append(res.TypeMismatch, rel)
			} else {
				res.DevOnly = append(res.DevOnly, rel)
			}
		}
	}

	return res, nil
}

func sortedUnion(a, b map[string]struct{}) []string {
	union := make([]string, 0, len(a)+len(b))
	for p := range a {
		union = append(union, p)
	}
	for p := range b {
		if _, ok := a[p]; !ok {
			union = append(union, p)
		}
	}
	sort.Strings(union)
	return union
}

// existsAsDirectory reports whether rel exists under root as a directory.
// Scan never lists directories, so a one-sided path needs this extra check
// to surface file-vs-directory conflicts instead of mislabeling them as
// one-sided. Symlinks and other non-regular files stay invisible, the same
// as during scanning.
func existsAsDirectory(root, rel string) bool {
	info, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return false
	}
	return info.IsDir()
}

const compareChunkSize = 32 * 1024

func equalContents(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()
	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	bufA := make([]byte, compareChunkSize)
	bufB := make([]byte, compareChunkSize)
	for {
		nA, errA := io.ReadFull(fa, bufA)
		nB, errB := io.ReadFull(fb, bufB)
		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return errB == io.EOF || errB == io.ErrUnexpectedEOF, nil
		}
		if errA != nil {
			return false, errA
		}
		if errB != nil {
			return false, errB
		}
	}
}
