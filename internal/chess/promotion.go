package chess

// PromotionChooser is asked which piece a pawn becomes when it reaches its
// promotion line. Returning NoKind, or any kind that is not Promotable,
// declines the promotion and the pawn stays a pawn.
type PromotionChooser func(side Side) Kind

// Promote returns a chooser that always picks kind.
func Promote(kind Kind) PromotionChooser {
	return func(Side) Kind { return kind }
}

// promotionLine returns the file a pawn with the given origin promotes on.
// Pawns that did not start on a double-step file never promote.
func promotionLine(origin Square) (int, bool) {
	switch origin.File {
	case blackPawnFile:
		return whiteBackFile, true
	case whitePawnFile:
		return blackBackFile, true
	}
	return 0, false
}

// CheckPromotion returns the piece that should stand on to after p moves
// there: a new piece of the chosen kind if p is a pawn arriving on its
// promotion line and choose picks a promotable kind, otherwise p itself.
func CheckPromotion(p *Piece, to Square, choose PromotionChooser) *Piece {
	if p == nil || p.kind != Pawn || choose == nil {
		return p
	}
	line, ok := promotionLine(p.origin)
	if !ok || to.File != line {
		return p
	}
	kind := choose(p.side)
	if !kind.Promotable() {
		return p
	}
	return NewPiece(p.side, kind)
}
