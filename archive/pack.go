// Package archive builds osu! skin packages (.osk), which are plain zip
// archives, and reads them back.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
)

// SkipFunc decides if path (relative to packed root, slash separated) should
// be left out. Returning true for directory skips its whole content.
type SkipFunc func(rel string, d fs.DirEntry) bool

// Pack writes every regular file under root to zip archive dest. Archive is
// assembled in temporary file next to dest, which never includes itself or
// dest. When fix is set entries are rewritten without data descriptors, some
// readers cannot handle them. Returns number of files packed.
func Pack(ctx context.Context, root, dest string, skip SkipFunc, fix bool) (count int, err error) {
	root, err = filepath.Abs(root)
	if err != nil {
		return 0, err
	}
	if dest, err = filepath.Abs(dest); err != nil {
		return 0, err
	}

	f, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return 0, fmt.Errorf("unable to create output file: %w", err)
	}
	tmpName := f.Name()
	// clean temporary file
	defer os.Remove(tmpName)

	zw := zip.NewWriter(f)

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == root || p == dest || p == tmpName {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if skip != nil && skip(rel, d) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := addFile(zw, p, rel, d); err != nil {
			return fmt.Errorf("unable to pack %s: %w", rel, err)
		}
		count++
		return nil
	})
	if err != nil {
		return 0, multierr.Combine(err, zw.Close(), f.Close())
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return 0, multierr.Append(fmt.Errorf("unable to close output archive: %w", err), f.Close())
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("unable to finalize output file: %w", err)
	}

	if fix {
		if err := FixDataDescriptors(tmpName, dest); err != nil {
			return 0, err
		}
		return count, nil
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return 0, fmt.Errorf("unable to create %s: %w", dest, err)
	}
	return count, nil
}

func addFile(zw *zip.Writer, p, name string, d fs.DirEntry) error {
	fi, err := d.Info()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(fi)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	r, err := os.Open(p)
	if err != nil {
		return err
	}
	defer r.Close()

	_, err = io.Copy(w, r)
	return err
}

// FixDataDescriptors copies archive from into to clearing data descriptor
// flag of every entry.
func FixDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return multierr.Append(fmt.Errorf("unable to write target file (%s): %w", to, err), w.Close())
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("unable to finalize target file (%s): %w", to, err)
	}
	return out.Close()
}

// Entry describes single file in archive.
type Entry struct {
	Name           string
	Size           uint64
	DataDescriptor bool
}

// Entries lists files in archive. Archives with entries which could escape
// extraction directory are rejected.
func Entries(archive string) ([]Entry, error) {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var res []Entry
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		res = append(res, Entry{
			Name:           name,
			Size:           f.UncompressedSize64,
			DataDescriptor: f.Flags&0x8 != 0,
		})
	}
	return res, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
