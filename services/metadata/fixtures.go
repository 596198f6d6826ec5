package metadata

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"

	"cinescope/models"
)

//go:embed fixtures
var embeddedFixtures embed.FS

// FixtureStore serves canned payloads for substitute mode. Layout:
//
//	popular.json          []MovieBanner
//	movie.json            raw /movie/{id} body
//	genres/<genre>.json   []MovieBase
type FixtureStore struct {
	fs afero.Fs
}

// NewFixtureStore reads fixtures from fsys.
func NewFixtureStore(fsys afero.Fs) *FixtureStore {
	return &FixtureStore{fs: fsys}
}

// NewEmbeddedFixtureStore serves the fixtures compiled into the binary.
func NewEmbeddedFixtureStore() *FixtureStore {
	sub, err := fs.Sub(embeddedFixtures, "fixtures")
	if err != nil {
		// fs.Sub only fails on an invalid literal path
		panic(err)
	}
	return NewFixtureStore(afero.FromIOFS{FS: sub})
}

// NewDirFixtureStore serves fixtures from a directory on disk, read-only.
func NewDirFixtureStore(dir string) *FixtureStore {
	return NewFixtureStore(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
}

func (f *FixtureStore) Popular() ([]models.MovieBanner, error) {
	var movies []models.MovieBanner
	if err := f.decode("popular.json", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Movie returns the single-movie fixture as stored.
func (f *FixtureStore) Movie() (json.RawMessage, error) {
	data, err := afero.ReadFile(f.fs, "movie.json")
	if err != nil {
		return nil, fmt.Errorf("read movie fixture: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("movie fixture is not valid JSON")
	}
	return json.RawMessage(data), nil
}

func (f *FixtureStore) Genre(g models.Genre) ([]models.MovieBase, error) {
	if _, ok := models.GenreID(g); !ok {
		return nil, fmt.Errorf("unknown genre %q", g)
	}
	var movies []models.MovieBase
	if err := f.decode(path.Join("genres", string(g)+".json"), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (f *FixtureStore) decode(name string, v any) error {
	data, err := afero.ReadFile(f.fs, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
