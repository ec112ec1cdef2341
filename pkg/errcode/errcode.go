package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteFileError
	ReadFileError

	// Configuration loading errors
	ParseFileError
	MergeConfigError
	ProcessEnvError

	// Validation errors
	ValidateMissingKeyError
	ValidateTypeMismatchError
	ValidateInvalidSecretError
	ValidateMissingFileError
	ValidateDomainMappingError
	ValidateUnknownDomainError
)
