package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/timeoff/core"
	"github.com/poiesic/timeoff/storage"
)

// chunkRepository implements storage.ChunkRepository using BadgerDB.
type chunkRepository struct {
	backend *Backend
	ordSeq  *badger.Sequence
	logger  *slog.Logger
}

// ChunkRepositoryOption configures a chunk repository.
type ChunkRepositoryOption func(*chunkRepository) error

// WithLogger sets a custom logger for the repository.
func WithLogger(logger *slog.Logger) ChunkRepositoryOption {
	return func(r *chunkRepository) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		r.logger = logger
		return nil
	}
}

// NewChunkRepository creates a new BadgerDB-backed chunk repository.
func NewChunkRepository(backend *Backend, opts ...ChunkRepositoryOption) (storage.ChunkRepository, error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}

	seq, err := backend.GetSequence(chunkSequenceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create ordinal sequence: %w", err)
	}

	repo := &chunkRepository{
		backend: backend,
		ordSeq:  seq,
		logger:  slog.Default().With("component", "chunk-repository"),
	}

	for _, opt := range opts {
		if err := opt(repo); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// nextOrdinal returns the next insertion ordinal, skipping 0.
func (r *chunkRepository) nextOrdinal() (uint64, error) {
	for {
		ord, err := r.ordSeq.Next()
		if err != nil {
			return 0, err
		}
		if ord != 0 {
			return ord, nil
		}
	}
}

// AddChunks adds document chunks to storage.
func (r *chunkRepository) AddChunks(ctx context.Context, chunks ...*core.DocumentChunk) ([]*core.DocumentChunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	for _, chunk := range chunks {
		if err := core.ValidateDocumentChunk(chunk); err != nil {
			return nil, err
		}
		if chunk.Id == 0 {
			chunk.Id = core.IDFromContent(chunk.Ref())
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			idKey := makeChunkIDKey(chunk.Id)

			// Re-adding an existing chunk keeps its original ordinal
			item, err := tx.Get(idKey)
			switch {
			case err == nil:
				err = item.Value(func(val []byte) error {
					ord, err := storage.UnmarshalID(val)
					if err != nil {
						return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
					}
					chunk.Ord = uint64(ord)
					return nil
				})
				if err != nil {
					return err
				}
			case errors.Is(err, badger.ErrKeyNotFound):
				ord, err := r.nextOrdinal()
				if err != nil {
					return fmt.Errorf("failed to get next ordinal: %w", err)
				}
				chunk.Ord = ord
				if err := tx.Set(idKey, storage.MarshalID(core.ID(ord))); err != nil {
					return err
				}
			default:
				return err
			}

			if err := tx.Set(makeChunkKey(chunk.Ord), storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}

	r.logger.Debug("added chunks", "count", len(chunks))
	return chunks, nil
}

// GetChunk retrieves a single chunk by ID.
func (r *chunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.DocumentChunk, error) {
	var chunk *core.DocumentChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ord, err := r.lookupOrdinal(tx, id)
		if err != nil {
			return err
		}

		item, err := tx.Get(makeChunkKey(ord))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			chunk, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// GetChunks retrieves multiple chunks by their IDs. Missing chunks are skipped.
func (r *chunkRepository) GetChunks(ctx context.Context, ids ...core.ID) ([]*core.DocumentChunk, error) {
	chunks := make([]*core.DocumentChunk, 0, len(ids))

	for _, id := range ids {
		chunk, err := r.GetChunk(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}

// AllChunks retrieves every stored chunk in insertion order.
func (r *chunkRepository) AllChunks(ctx context.Context) ([]*core.DocumentChunk, error) {
	var chunks []*core.DocumentChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				chunk, err := storage.UnmarshalChunk(val)
				if err != nil {
					return err
				}
				chunks = append(chunks, chunk)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// CountChunks returns the number of stored chunks.
func (r *chunkRepository) CountChunks(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteChunks removes chunks by their IDs.
func (r *chunkRepository) DeleteChunks(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			ord, err := r.lookupOrdinal(tx, id)
			if err != nil {
				return err
			}
			if err := tx.Delete(makeChunkKey(ord)); err != nil {
				return err
			}
			if err := tx.Delete(makeChunkIDKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteAll removes every stored chunk and index entry.
func (r *chunkRepository) DeleteAll(ctx context.Context) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, prefix := range []string{chunkRecordPrefix + ":", chunkIDIndexPrefix + ":"} {
			var keys [][]byte

			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(prefix)
			opts.PrefetchValues = false
			iter := tx.NewIterator(opts)
			for iter.Rewind(); iter.Valid(); iter.Next() {
				keys = append(keys, iter.Item().KeyCopy(nil))
			}
			iter.Close()

			for _, key := range keys {
				if err := tx.Delete(key); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// FindSimilar finds document chunks similar to the given vector.
func (r *chunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.ChunkMatch, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", storage.ErrInvalidQuery)
	}
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction executes a function within a transaction.
func (r *chunkRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// Close releases the ordinal sequence. The backend is closed separately.
func (r *chunkRepository) Close() error {
	return r.ordSeq.Release()
}

// lookupOrdinal resolves a content ID to its insertion ordinal.
func (r *chunkRepository) lookupOrdinal(tx *badger.Txn, id core.ID) (uint64, error) {
	item, err := tx.Get(makeChunkIDKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, storage.ErrNotFound
		}
		return 0, err
	}

	var ord uint64
	err = item.Value(func(val []byte) error {
		decoded, err := storage.UnmarshalID(val)
		if err != nil {
			return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
		}
		ord = uint64(decoded)
		return nil
	})
	return ord, err
}
