package core

import (
	"io/fs"
	"path"
)

// CopyFS copies every regular file below root in src into dst at the same
// position relative to dst's root, creating directories as needed and
// keeping permission bits. Use "." to copy all of src.
//
// Typical sources are embed.FS and testing/fstest.MapFS:
//
//	err := core.CopyFS(fstest.MapFS{
//	    "a/b.txt": {Data: []byte("b")},
//	}, mem, ".")
func CopyFS(src fs.FS, dst FS, root string) error {
	return fs.WalkDir(src, root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := name
		if root != "." {
			rel = name[len(root):]
		}
		target := path.Join("/", rel)

		if d.IsDir() {
			return dst.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return err
		}
		return dst.WriteFile(target, data, info.Mode().Perm())
	})
}
