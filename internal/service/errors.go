package service

import "errors"

var (
	ErrNoStoragesProvided = errors.New("no storages provided")

	ErrReadingEnvironment   = errors.New("error reading environment")
	ErrWritingConfiguration = errors.New("error writing google services configuration")
)
