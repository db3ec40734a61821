package assets

import (
	"os"
	"path/filepath"
	"strings"
)

//nolint:gochecknoglobals
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// Images ищет картинки подарков в каталоге dir.
type Images struct {
	dir string
}

func NewImages(dir string) *Images {
	return &Images{dir: dir}
}

// Lookup путь к файлу <name>.{png,jpg,jpeg}. Пустое имя или имя с
// разделителями пути не ищутся.
func (i *Images) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if i.dir == "" || name == "" || name != filepath.Base(name) || name == ".." {
		return "", false
	}

	for _, ext := range imageExtensions {
		path := filepath.Join(i.dir, name+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}

	return "", false
}

// Open открывает найденную картинку. Закрывает вызывающий.
func (i *Images) Open(name string) (*os.File, bool) {
	path, ok := i.Lookup(name)
	if !ok {
		return nil, false
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}

	return f, true
}
