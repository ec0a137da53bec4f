package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file of a directory in an fs.FS that the parser supports.
// Works with embed.FS for bundled translations and os.DirFS for files on disk.
// Translations of several files are merged per language, later files win.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewFSAdapter creates a new FSAdapter instance.
// Returns nil if parser or fsys is nil. An empty dir means the root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{
		parser: parser,
		fsys:   fsys,
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithAdapterLogger sets the logger used to report files that failed to load.
func (a *FSAdapter) WithAdapterLogger(l *slog.Logger) *FSAdapter {
	if l != nil {
		a.logger = l
	}
	return a
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	allTranslations := make(map[string]map[string]any)
	validFileProcessed := false

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := path.Ext(entry.Name())
		if ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.processFile(ctx, filePath, allTranslations); err != nil {
			if errors.Is(err, ErrLoadingFileCancelled) {
				return nil, err
			}
			// A broken file must not take the other languages down with it
			a.logger.WarnContext(ctx, "failed to load translation file",
				slog.String("file", filePath),
				slog.Any("error", err),
			)
			continue
		}
		validFileProcessed = true
	}

	if !validFileProcessed {
		return nil, fmt.Errorf("%w in '%s'", ErrNoTranslationFiles, a.dir)
	}

	return allTranslations, nil
}

// processFile reads and parses a single file, merging its translations into the result map
func (a *FSAdapter) processFile(ctx context.Context, filePath string, allTranslations map[string]map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("translation file '%s' is empty", filePath)
	}

	fileTranslations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	for lang, translations := range fileTranslations {
		if allTranslations[lang] == nil {
			allTranslations[lang] = make(map[string]any)
		}
		maps.Copy(allTranslations[lang], translations)
	}

	return nil
}
