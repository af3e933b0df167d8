package interfaces

import "context"

// IDocumentStorage abstracts the external file store. This service owns only
// document metadata; bytes go through this port and are addressed by the
// opaque storage key it returns.

type IDocumentStorage interface {
	Put(ctx context.Context, candidateID, fileName string, data []byte) (storageKey string, err error)
	Delete(ctx context.Context, storageKey string) error
}
