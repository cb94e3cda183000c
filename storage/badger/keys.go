package badger

import (
	"encoding/binary"

	"github.com/poiesic/timeoff/core"
	"github.com/poiesic/timeoff/storage"
)

// Key prefixes for the chunk keyspace.
//
// Primary records are keyed by insertion ordinal encoded big-endian, so a
// prefix scan over chunkRecordPrefix visits chunks in insertion order. The
// secondary index maps a content ID to the ordinal that owns it.
const (
	chunkRecordPrefix  = "docchk"
	chunkIDIndexPrefix = "docchkid"
	chunkSequenceName  = "docchkseq"
)

// makeChunkKey builds the primary key for a chunk from its insertion ordinal.
func makeChunkKey(ord uint64) []byte {
	prefix := []byte(chunkRecordPrefix + ":")
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], ord)
	return key
}

// makeChunkIDKey builds the secondary index key for a chunk content ID.
func makeChunkIDKey(id core.ID) []byte {
	prefix := []byte(chunkIDIndexPrefix + ":")
	return append(prefix, storage.MarshalID(id)...)
}
