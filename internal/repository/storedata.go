package repository

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"github.com/andynikk/counterfile/internal/constants"
	"github.com/andynikk/counterfile/internal/constants/errs"
	"github.com/andynikk/counterfile/internal/encoding"
	"github.com/andynikk/counterfile/internal/models"
)

// StorageFile хранит счетчик в текстовом файле
// StoreFile путь к файлу счетчика
type StorageFile struct {
	StoreFile string
}

type Storage interface {
	GetCounter() (ReadResult, error)
	WriteCounter(c models.Counter) error
}

// NewStorage реализует фабричный метод.
func NewStorage(storeFile string) Storage {
	return &StorageFile{StoreFile: storeFile}
}

// GetCounter Получение счетчика из файла
func (f *StorageFile) GetCounter() (ReadResult, error) {
	res, err := os.ReadFile(f.StoreFile)
	if errors.Is(err, fs.ErrNotExist) {
		constants.Logger.Debug().Str("file", f.StoreFile).Msg("counter file is absent")
		return ReadResult{Status: Absent}, nil
	}
	if err != nil {
		return ReadResult{}, errs.Filesystem(err, "read", f.StoreFile)
	}

	val, err := encoding.DecodeCounter(res)
	if err != nil {
		constants.Logger.Debug().Str("file", f.StoreFile).Err(err).Msg("counter file is malformed")
		return ReadResult{Status: Malformed}, nil
	}

	return ReadResult{Status: Parsed, Value: val}, nil
}

// WriteCounter Запись счетчика в файл, прежнее содержимое заменяется целиком
func (f *StorageFile) WriteCounter(c models.Counter) error {
	data := encoding.EncodeCounter(c)
	if err := os.WriteFile(f.StoreFile, data, constants.FilePerm); err != nil {
		return errs.Filesystem(err, "write", f.StoreFile)
	}
	constants.Logger.Debug().Str("file", f.StoreFile).Int("bytes", len(data)).Msg("counter file written")

	return nil
}
