package game

import "fmt"

// ApplyMove validates req and executes it on b:
//
//  1. relocation, capturing an enemy on the destination
//  2. transform-count propagation to attacker and captured piece
//  3. Strategist re-placement preparation
//  4. Talent promotion on an edge row
//  5. Leader alignment buff scan
//  6. Investor vulnerability scan
//
// On failure b is untouched. On success b is mutated in place; callers that
// need to keep the previous state apply to a Clone.
func ApplyMove(b *Board, req MoveRequest) Result {
	if err := ValidateMove(b, req); err != nil {
		return failure(err)
	}
	mover := b.ActivePiece(req.PieceID)
	// The move itself is the range query that spends a pending buff.
	Destinations(b, mover)

	res := Result{Success: true}
	if target := b.PieceAt(req.To); target != nil {
		capture(b, mover, target, &res)
	} else {
		from := mover.Position
		b.relocate(mover, req.To)
		res.emit(PieceMoved{PieceID: mover.ID, From: from, To: req.To})
		res.changed(from, nil)
		res.changed(req.To, mover)
	}

	promote(mover, &res)
	applyLeaderBuffs(b, mover, &res)
	checkInvestorVulnerability(b, &res)
	return res
}

func capture(b *Board, attacker, target *Piece, res *Result) {
	from, at := attacker.Position, target.Position
	b.deactivate(target)
	b.relocate(attacker, at)
	res.emit(PieceCaptured{CapturedID: target.ID, By: attacker.ID, Position: at})
	res.changed(from, nil)
	res.changed(at, attacker)

	advanceTransform(attacker, res)
	advanceTransform(target, res)

	if attacker.Type == Strategist {
		prepareReplacement(attacker, target, res)
	}
}

// advanceTransform counts one capture involvement and levels the piece up
// once it reaches the threshold.
func advanceTransform(p *Piece, res *Result) {
	p.TransformCount++
	if !p.CanTransform() {
		return
	}
	oldLevel, oldType := p.Level, p.Type
	p.Transform()
	res.emit(PieceTransformed{
		PieceID:  p.ID,
		OldLevel: oldLevel,
		NewLevel: p.Level,
		OldType:  oldType,
		NewType:  p.Type,
	})
}

// prepareReplacement shifts a piece taken by a Strategist one level: up for an
// ally, down for an enemy.
func prepareReplacement(strategist, captured *Piece, res *Result) {
	delta := -1
	if captured.OwnerID == strategist.OwnerID {
		// Unreachable from ApplyMove, which only captures enemies. Kept for an
		// ally recapture rule.
		delta = 1
	}
	captured.setLevel(clamp(captured.Level+delta, MinLevel, MaxLevel))
	res.emit(StrategistPlacementReady{
		StrategistID:    strategist.ID,
		CapturedPieceID: captured.ID,
		NewLevel:        captured.Level,
		NewType:         captured.Type,
	})
}

// promote turns a Talent that lands on either edge row into a Leader.
func promote(p *Piece, res *Result) {
	if p.Type != Talent {
		return
	}
	if p.Position.Y != 0 && p.Position.Y != BoardSize-1 {
		return
	}
	oldLevel := p.Level
	p.setLevel(Leader.Level())
	res.emit(PiecePromoted{
		PieceID:  p.ID,
		OldLevel: oldLevel,
		NewLevel: p.Level,
		Position: p.Position,
	})
}

// applyLeaderBuffs runs after a Leader moves: every friendly Talent aligned
// with at least BuffLeaderCount friendly Leaders gets ExtraRange.
func applyLeaderBuffs(b *Board, mover *Piece, res *Result) {
	if mover.Type != Leader {
		return
	}
	pieces := b.Pieces()
	for _, talent := range pieces {
		if talent.OwnerID != mover.OwnerID || talent.Type != Talent {
			continue
		}
		leaders := 0
		for _, p := range pieces {
			if p.OwnerID == talent.OwnerID && p.Type == Leader && aligned(talent.Position, p.Position) {
				leaders++
			}
		}
		if leaders < BuffLeaderCount {
			continue
		}
		talent.Buffs.ExtraRange = true
		res.emit(LeaderBuffApplied{TalentPieceID: talent.ID, Position: talent.Position})
	}
}

// checkInvestorVulnerability demotes every Investor, of either owner, whose
// second ring holds VulnerabilityThreshold or more threatening pieces.
func checkInvestorVulnerability(b *Board, res *Result) {
	for _, p := range b.Pieces() {
		if p.Type != Investor {
			continue
		}
		threats := 0
		for _, sq := range p.Position.secondRing() {
			if other := b.PieceAt(sq); other != nil && threatens(other.Type) {
				threats++
			}
		}
		if threats < VulnerabilityThreshold {
			continue
		}
		oldLevel := p.Level
		p.setLevel(Strategist.Level())
		res.emit(InvestorVulnerable{
			PieceID:  p.ID,
			OldLevel: oldLevel,
			NewLevel: p.Level,
			Position: p.Position,
		})
	}
}

func threatens(t PieceType) bool {
	switch t {
	case Leader, Strategist, Investor:
		return true
	case Talent:
		return false
	default:
		panic(fmt.Sprintf("unknown piece type %d", int(t)))
	}
}
