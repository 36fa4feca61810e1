// Package hashing detects saved games that share a position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

const squareCount = chess.BoardSize * chess.BoardSize

// Zobrist keys. Pawns get an extra key for their origin square since the
// origin decides which way they move.
var (
	pieceKeys  [squareCount][2][chess.King + 1]uint64
	originKeys [squareCount][squareCount]uint64
	blackKey   uint64
)

func init() {
	r := rand.New(rand.NewSource(0x5eed))
	for sq := range pieceKeys {
		for side := range pieceKeys[sq] {
			for kind := range pieceKeys[sq][side] {
				pieceKeys[sq][side][kind] = r.Uint64()
			}
		}
		for origin := range originKeys[sq] {
			originKeys[sq][origin] = r.Uint64()
		}
	}
	blackKey = r.Uint64()
}

// ZobristHash hashes the board together with the side to move.
func ZobristHash(b *chess.Board, toMove chess.Side) uint64 {
	var h uint64
	for _, sq := range chess.AllSquares() {
		p := b.Piece(sq)
		if p == nil {
			continue
		}
		i := sq.Index()
		h ^= pieceKeys[i][p.Side()][p.Kind()]
		if p.Kind() == chess.Pawn {
			h ^= originKeys[i][p.Origin().Index()]
		}
	}
	if toMove == chess.Black {
		h ^= blackKey
	}
	return h
}

// WeakHash is a cheap second opinion: the sum of occupied square numbers
// weighted by piece kind.
func WeakHash(b *chess.Board) uint32 {
	var h uint32
	for _, sq := range chess.AllSquares() {
		if p := b.Piece(sq); p != nil {
			h += uint32(sq.Index()+1) * uint32(int(p.Kind())+int(p.Side())*8)
		}
	}
	return h
}

// Signature identifies one saved position.
type Signature struct {
	ID       string
	Hash     uint64
	WeakHash uint32
}

// Sign computes the signature of a position.
func Sign(id string, b *chess.Board, toMove chess.Side) Signature {
	return Signature{ID: id, Hash: ZobristHash(b, toMove), WeakHash: WeakHash(b)}
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	hashTable      map[uint64][]Signature
	duplicateCount int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{hashTable: make(map[uint64][]Signature)}
}

// CheckAndAdd records sig. If an earlier signature has the same position it
// returns that signature's ID and true, and sig is not recorded.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (string, bool) {
	for _, seen := range d.hashTable[sig.Hash] {
		if seen.WeakHash == sig.WeakHash {
			d.duplicateCount++
			return seen.ID, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return "", false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
