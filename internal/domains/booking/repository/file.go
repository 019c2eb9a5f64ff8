package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"villa/infras/otel"
	"villa/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

type fileBackend struct {
	fs   afero.Fs
	path string
	otel otel.Otel
}

func NewFile(fs afero.Fs, path string, otel otel.Otel) Backend {
	return &fileBackend{
		fs:   fs,
		path: path,
		otel: otel,
	}
}

func (f *fileBackend) Read(ctx context.Context) (state []byte, err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state, err = afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrStateNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("failed to read booking state file")

		return nil, fmt.Errorf("failed to read booking state file: %w", err)
	}

	return state, nil
}

// Write replaces the file through a temp file and rename so a crash never
// leaves half a state behind.
func (f *fileBackend) Write(ctx context.Context, state []byte) (err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = f.fs.MkdirAll(filepath.Dir(f.path), dirMode); err != nil {
		return fmt.Errorf("failed to create booking state dir: %w", err)
	}

	tmp := f.path + ".tmp"

	if err = afero.WriteFile(f.fs, tmp, state, fileMode); err != nil {
		log.Error().Err(err).Str("path", tmp).Msg("failed to write booking state file")

		return fmt.Errorf("failed to write booking state file: %w", err)
	}

	if err = f.fs.Rename(tmp, f.path); err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("failed to replace booking state file")

		return fmt.Errorf("failed to replace booking state file: %w", err)
	}

	return nil
}

func (f *fileBackend) Name() string {
	return StoreFile
}
