package badger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/interfaces"
	"github.com/ternarybob/pricedash/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadDocumentsFromFiles imports seed documents from .json, .yaml/.yml and .toml
// files in dirPath into collection. A file holds either a table of documents
// keyed by document key, or (JSON/YAML only) a list of {id, data} entries.
// Unreadable files are logged and skipped.
func LoadDocumentsFromFiles(ctx context.Context, store interfaces.DocumentStore, dirPath, collection string, logger arbor.ILogger) (int, error) {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		logger.Debug().Str("dir", dirPath).Msg("Seed directory does not exist, skipping")
		return 0, nil
	}

	logger.Info().Str("dir", dirPath).Str("collection", collection).Msg("Loading seed documents from files")

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed directory: %w", err)
	}

	loadedCount := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" && ext != ".toml" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to read seed file")
			continue
		}

		docs, err := parseSeedFile(ext, content)
		if err != nil {
			logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to parse seed file")
			continue
		}

		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return loadedCount, err
			}
			if err := store.SaveDocument(ctx, collection, doc.Key, doc.Data); err != nil {
				logger.Warn().Err(err).Str("file", entry.Name()).Str("key", doc.Key).Msg("Failed to save seed document")
				continue
			}
			loadedCount++
		}

		logger.Debug().Str("file", entry.Name()).Int("documents", len(docs)).Msg("Seed file loaded")
	}

	if loadedCount > 0 {
		logger.Info().Int("count", loadedCount).Str("collection", collection).Msg("Seed documents loaded from files")
	} else {
		logger.Debug().Str("collection", collection).Msg("No seed documents loaded from files")
	}

	return loadedCount, nil
}

func parseSeedFile(ext string, content []byte) ([]models.KeyedDocument, error) {
	var parsed interface{}
	var err error
	switch ext {
	case ".json":
		err = json.Unmarshal(content, &parsed)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &parsed)
	case ".toml":
		var table map[string]interface{}
		err = toml.Unmarshal(content, &table)
		parsed = table
	}
	if err != nil {
		return nil, err
	}

	switch v := parsed.(type) {
	case map[string]interface{}:
		return seedFromTable(v)
	case []interface{}:
		return seedFromList(v)
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported seed layout %T", parsed)
	}
}

func seedFromTable(table map[string]interface{}) ([]models.KeyedDocument, error) {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	docs := make([]models.KeyedDocument, 0, len(keys))
	for _, key := range keys {
		data, ok := table[key].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("document %s is not a table", key)
		}
		docs = append(docs, models.KeyedDocument{Key: key, Data: data})
	}
	return docs, nil
}

func seedFromList(list []interface{}) ([]models.KeyedDocument, error) {
	docs := make([]models.KeyedDocument, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("entry %d is not an object", i)
		}
		key, _ := entry["id"].(string)
		if key == "" {
			return nil, fmt.Errorf("entry %d has no id", i)
		}
		data, ok := entry["data"].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("entry %s has no data object", key)
		}
		docs = append(docs, models.KeyedDocument{Key: key, Data: data})
	}
	return docs, nil
}
