package game

// EventKind names what happened in an Event.
type EventKind string

const (
	KindPieceMoved               EventKind = "piece_moved"
	KindPieceCaptured            EventKind = "piece_captured"
	KindPieceTransformed         EventKind = "piece_transformed"
	KindStrategistPlacementReady EventKind = "strategist_placement_ready"
	KindPiecePromoted            EventKind = "piece_promoted"
	KindLeaderBuffApplied        EventKind = "leader_buff_applied"
	KindInvestorVulnerable       EventKind = "investor_vulnerable"
	KindPiecePlaced              EventKind = "piece_placed"
)

// Payload is the typed body of an event.
type Payload interface {
	Kind() EventKind
}

type PieceMoved struct {
	PieceID string
	From    Position
	To      Position
}

type PieceCaptured struct {
	CapturedID string
	By         string
	Position   Position
}

type PieceTransformed struct {
	PieceID  string
	OldLevel int
	NewLevel int
	OldType  PieceType
	NewType  PieceType
}

// StrategistPlacementReady announces that a piece captured by a Strategist
// has had its level adjusted and can be put back with PlaceCapturedPiece.
type StrategistPlacementReady struct {
	StrategistID    string
	CapturedPieceID string
	NewLevel        int
	NewType         PieceType
}

type PiecePromoted struct {
	PieceID  string
	OldLevel int
	NewLevel int
	Position Position
}

type LeaderBuffApplied struct {
	TalentPieceID string
	Position      Position
}

type InvestorVulnerable struct {
	PieceID  string
	OldLevel int
	NewLevel int
	Position Position
}

type PiecePlaced struct {
	PieceID  string
	Position Position
	Level    int
	Type     PieceType
}

func (PieceMoved) Kind() EventKind               { return KindPieceMoved }
func (PieceCaptured) Kind() EventKind            { return KindPieceCaptured }
func (PieceTransformed) Kind() EventKind         { return KindPieceTransformed }
func (StrategistPlacementReady) Kind() EventKind { return KindStrategistPlacementReady }
func (PiecePromoted) Kind() EventKind            { return KindPiecePromoted }
func (LeaderBuffApplied) Kind() EventKind        { return KindLeaderBuffApplied }
func (InvestorVulnerable) Kind() EventKind       { return KindInvestorVulnerable }
func (PiecePlaced) Kind() EventKind              { return KindPiecePlaced }

type Event struct {
	Kind    EventKind
	Payload Payload
}

// Delta records the new content of a square. An empty PieceID means the square was vacated.
type Delta struct {
	Position Position
	PieceID  string
}

// Result is the outcome of one action.
type Result struct {
	Success bool
	Events  []Event
	Deltas  []Delta
	Err     error
	Winner  string // set by the engine facade once a player has won
}

func failure(err error) Result {
	return Result{Err: err}
}

func (r *Result) emit(p Payload) {
	r.Events = append(r.Events, Event{Kind: p.Kind(), Payload: p})
}

func (r *Result) changed(pos Position, p *Piece) {
	d := Delta{Position: pos}
	if p != nil {
		d.PieceID = p.ID
	}
	r.Deltas = append(r.Deltas, d)
}

// EventsOf returns the payloads of the given kind, in order.
func (r Result) EventsOf(kind EventKind) []Payload {
	var out []Payload
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Payload)
		}
	}
	return out
}
