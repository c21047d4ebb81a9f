package render

import "errors"

var (
	// ErrUnknownKind is returned when no definition is registered for a node
	// type.
	ErrUnknownKind = errors.New("render: unknown component kind")
	// ErrUnknownStoreKind is returned when a definition requires a store kind
	// the host cannot create.
	ErrUnknownStoreKind = errors.New("render: unknown store kind")
	// ErrStoreMismatch is returned by factories handed a store of the wrong
	// type.
	ErrStoreMismatch = errors.New("render: store does not satisfy component contract")
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("render: translator not configured")
)
