package scene

import "chargeracer/merge"

// Dragger is the part of the board a pointer drag drives
type Dragger interface {
	ContainerAt(p merge.Point) merge.Container
	BeginDrag(tok *merge.Token) bool
	UpdateDrag(tok *merge.Token, p merge.Point) bool
	EndDrag(tok *merge.Token, p merge.Point) merge.Action
}

// DragTracker follows one pointer through press, move and release
type DragTracker struct {
	board Dragger

	token    *merge.Token
	grab     merge.Point // pointer offset from the token centre
	pointer  merge.Point
	overHome bool
}

// NewDragTracker creates an idle tracker
func NewDragTracker(board Dragger) *DragTracker {
	return &DragTracker{board: board}
}

// Begin picks up the token under p, if any
func (d *DragTracker) Begin(p merge.Point) bool {
	if d.token != nil {
		return false
	}
	c := d.board.ContainerAt(p)
	if c == nil || c.Occupant() == nil {
		return false
	}
	tok := c.Occupant()
	if !d.board.BeginDrag(tok) {
		return false
	}
	center := c.Bounds().Center()
	d.token = tok
	d.grab = merge.Point{X: p.X - center.X, Y: p.Y - center.Y}
	d.pointer = p
	d.overHome = true
	return true
}

// Move tracks the pointer while a token is held
func (d *DragTracker) Move(p merge.Point) {
	if d.token == nil {
		return
	}
	d.pointer = p
	d.overHome = d.board.UpdateDrag(d.token, p)
}

// End drops the held token at p
func (d *DragTracker) End(p merge.Point) (merge.Action, bool) {
	if d.token == nil {
		return merge.Return, false
	}
	tok := d.token
	d.token = nil
	return d.board.EndDrag(tok, p), true
}

// Token returns the held token, or nil
func (d *DragTracker) Token() *merge.Token {
	return d.token
}

// Position returns where the held token is drawn
func (d *DragTracker) Position() merge.Point {
	return merge.Point{X: d.pointer.X - d.grab.X, Y: d.pointer.Y - d.grab.Y}
}

// OverHome reports whether the pointer is still over the token's cell
func (d *DragTracker) OverHome() bool {
	return d.overHome
}
