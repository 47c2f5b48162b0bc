package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations from some source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter reads every file in dir that parser supports and merges the
// results. Later files override keys of earlier ones at the top level.
// Works with embed.FS and os.DirFS alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, values := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], values)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}
