package core

import "os"

// Marshaler abstracts encoding a value into file content.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// PermOwnerRW is the permission used for files depdrift writes (owner read/write only).
const PermOwnerRW os.FileMode = 0o600
