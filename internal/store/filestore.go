package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Blob file names, one per top-level collection.
const (
	fileProducts     = "products.json"
	fileCategories   = "categories.json"
	fileIngredients  = "ingredients.json"
	fileRecipes      = "recipes.json"
	fileUsers        = "users.json"
	fileOrders       = "orders.json"
	fileBusinessInfo = "business_info.json"
	fileSettings     = "settings.json"
)

// FileStore is the persistence gateway: one JSON blob per collection under a
// local directory. It is best-effort and non-transactional across keys; a
// crash between two writes can leave a partially updated snapshot, and the
// in-memory state stays authoritative when a write fails.
type FileStore struct {
	dir  string
	seed bool // fall back to seed data (true) or empty collections (false)
}

// NewFileStore returns a gateway rooted at dir. When seedDefaults is set,
// missing or corrupt keys fall back to the seed catalog on load.
func NewFileStore(dir string, seedDefaults bool) *FileStore {
	return &FileStore{dir: dir, seed: seedDefaults}
}

// Save serializes every collection of the snapshot to its blob file.
// Failures are logged and swallowed; Save never reports an error to the
// caller.
func (f *FileStore) Save(snap *Snapshot) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", f.dir).Msg("Failed to create data directory, snapshot not mirrored")
		return
	}
	f.writeBlob(fileProducts, snap.Products)
	f.writeBlob(fileCategories, snap.Categories)
	f.writeBlob(fileIngredients, snap.Ingredients)
	f.writeBlob(fileRecipes, snap.Recipes)
	f.writeBlob(fileUsers, snap.Users)
	f.writeBlob(fileOrders, snap.Orders)
	f.writeBlob(fileBusinessInfo, snap.BusinessInfo)
	f.writeBlob(fileSettings, snap.Settings)
}

func (f *FileStore) writeBlob(name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("blob", name).Msg("Failed to marshal blob")
		return
	}
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Error().Err(err).Str("blob", name).Msg("Failed to write blob")
	}
}

// Load deserializes whatever blobs are present. Each key is read
// independently: a missing or unparsable blob falls back to that key's
// default and never aborts the rest of the load.
func (f *FileStore) Load() Snapshot {
	snap := EmptySnapshot()
	if f.seed {
		snap = SeedSnapshot()
	}
	readBlob(f.path(fileProducts), &snap.Products)
	readBlob(f.path(fileCategories), &snap.Categories)
	readBlob(f.path(fileIngredients), &snap.Ingredients)
	readBlob(f.path(fileRecipes), &snap.Recipes)
	readBlob(f.path(fileUsers), &snap.Users)
	readBlob(f.path(fileOrders), &snap.Orders)
	readBlob(f.path(fileBusinessInfo), &snap.BusinessInfo)
	readBlob(f.path(fileSettings), &snap.Settings)
	return snap
}

func (f *FileStore) path(name string) string {
	return filepath.Join(f.dir, name)
}

// readBlob replaces *dst with the decoded blob if, and only if, the file
// exists and parses. The default value in *dst survives otherwise.
func readBlob[T any](path string, dst *T) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read blob, using defaults")
		}
		return
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Corrupt blob, using defaults")
		return
	}
	*dst = v
}
