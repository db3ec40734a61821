package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gift_bot/internal/infrastructure/assets"
)

func TestLookup(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	rq.NoError(os.WriteFile(filepath.Join(dir, "cream.jpg"), []byte("jpg"), 0o600))
	rq.NoError(os.WriteFile(filepath.Join(dir, "cream.png"), []byte("png"), 0o600))
	rq.NoError(os.WriteFile(filepath.Join(dir, "book.jpeg"), []byte("jpeg"), 0o600))

	images := assets.NewImages(dir)

	testCases := []struct {
		name  string
		image string
		want  string
		found bool
	}{
		{name: "Png preferred", image: "cream", want: filepath.Join(dir, "cream.png"), found: true},
		{name: "Jpeg", image: "book", want: filepath.Join(dir, "book.jpeg"), found: true},
		{name: "Missing", image: "ghost"},
		{name: "Empty name", image: ""},
		{name: "Path traversal", image: "../cream"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := images.Lookup(tc.image)
			require.Equal(t, tc.found, ok)
			require.Equal(t, tc.want, path)
		})
	}

	f, ok := images.Open("book")
	rq.True(ok)
	rq.NoError(f.Close())
}
