package sink

import (
	"encoding/json"

	"github.com/matzehuels/hemicycle/pkg/hemicycle"
	"github.com/matzehuels/hemicycle/pkg/seating"
)

// Document is the JSON export of a layout and its seating plan. Seats are
// listed in canonical order.
type Document struct {
	Seats       int             `json:"seats"`
	Rows        int             `json:"rows"`
	RowSeats    []int           `json:"row_seats"`
	RowWidth    float64         `json:"row_width"`
	Angle       float64         `json:"angle"`
	RadiusRatio float64         `json:"radius_ratio"`
	Bounds      [4]float64      `json:"bounds"` // minX, minY, maxX, maxY
	Uncertain   bool            `json:"uncertain,omitempty"`
	Groups      []DocumentGroup `json:"groups"`
	Positions   []DocumentSeat  `json:"positions"`
}

// DocumentGroup describes one parliamentary group.
type DocumentGroup struct {
	Index     int             `json:"index"`
	Name      string          `json:"name,omitempty"`
	Character string          `json:"character,omitempty"`
	Colors    []seating.Color `json:"colors"`
	Size      string          `json:"size"`
	Kind      string          `json:"kind"`
	Lower     int             `json:"lower"`
	Median    int             `json:"median"`
	Total     int             `json:"total"`
}

// DocumentSeat is one seat with its position and assignment.
type DocumentSeat struct {
	Seat   int                `json:"seat"`
	Row    int                `json:"row"`
	Radius float64            `json:"radius"`
	Angle  float64            `json:"angle"`
	X      float64            `json:"x"`
	Y      float64            `json:"y"`
	Group  int                `json:"group"`
	Status seating.SeatStatus `json:"status"`
}

// NewDocument builds the export document.
func NewDocument(l *hemicycle.Layout, p seating.Plan) (*Document, error) {
	if err := checkPlan(l, p); err != nil {
		return nil, err
	}
	minX, minY, maxX, maxY := l.Bounds()
	doc := &Document{
		Seats:       l.NumberOfSeats(),
		Rows:        l.NumberOfRows(),
		RowSeats:    l.RowSeats(),
		RowWidth:    l.RowWidth(),
		Angle:       l.Angle(),
		RadiusRatio: l.RadiusRatio(),
		Bounds:      [4]float64{minX, minY, maxX, maxY},
		Uncertain:   p.HasUncertainSeats(),
	}

	for i, g := range p.Groups() {
		dg := DocumentGroup{
			Index:  i,
			Name:   g.Name,
			Colors: g.Colors,
			Size:   g.Size.String(),
			Kind:   g.Size.Kind().String(),
			Lower:  g.Size.LowerBound(),
			Median: g.Size.Median(),
			Total:  g.Size.FullSize(),
		}
		if g.Character != 0 {
			dg.Character = string(g.Character)
		}
		doc.Groups = append(doc.Groups, dg)
	}

	doc.Positions = make([]DocumentSeat, l.NumberOfSeats())
	for i, a := range p.Assignments() {
		pos := l.Seat(i)
		doc.Positions[i] = DocumentSeat{
			Seat:   i,
			Row:    l.SeatRow(i),
			Radius: pos.Radius,
			Angle:  pos.Angle,
			X:      pos.X(),
			Y:      pos.Y(),
			Group:  a.Group,
			Status: a.Status,
		}
	}
	return doc, nil
}

// RenderJSON returns the indented JSON export of l and p.
func RenderJSON(l *hemicycle.Layout, p seating.Plan) ([]byte, error) {
	doc, err := NewDocument(l, p)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
