package tui

import "github.com/thenoetrevino/projboard/internal/dragdrop"

// DragState tracks the gesture in flight between pick up and drop or cancel.
type DragState struct {
	source   *ProjectItem
	transfer *dragdrop.DataTransfer
	// over is the target that accepted the payload, nil when none did
	over dragdrop.DragTarget
}

// NewDragState creates an idle drag state
func NewDragState() *DragState {
	return &DragState{}
}

// Active reports whether a card is being dragged
func (d *DragState) Active() bool {
	return d.source != nil
}

// Source returns the card being dragged, or nil
func (d *DragState) Source() *ProjectItem {
	return d.source
}

// Transfer returns the payload of the gesture, or nil
func (d *DragState) Transfer() *dragdrop.DataTransfer {
	return d.transfer
}

// Start begins dragging source and lets it fill the payload.
func (d *DragState) Start(source *ProjectItem) {
	d.source = source
	d.transfer = dragdrop.NewDataTransfer()
	d.over = nil
	source.DragStart(d.transfer)
}

// Enter offers the payload to target, leaving the previous one first.
// It reports whether target accepted.
func (d *DragState) Enter(target dragdrop.DragTarget) bool {
	if !d.Active() {
		return false
	}
	d.Leave()
	if target.DragOver(d.transfer) {
		d.over = target
		return true
	}
	return false
}

// Leave tells the current target the drag moved away
func (d *DragState) Leave() {
	if d.over != nil {
		d.over.DragLeave(d.transfer)
		d.over = nil
	}
}

// Drop drops on target if target accepted the payload, then ends the gesture.
// It reports whether a drop happened.
func (d *DragState) Drop(target dragdrop.DragTarget) bool {
	if !d.Active() {
		return false
	}
	dropped := false
	if d.over == target {
		target.Drop(d.transfer)
		d.over = nil
		dropped = true
	}
	d.end()
	return dropped
}

// Cancel ends the gesture without a drop
func (d *DragState) Cancel() {
	if !d.Active() {
		return
	}
	d.Leave()
	d.end()
}

func (d *DragState) end() {
	d.Leave()
	d.source.DragEnd(d.transfer)
	d.transfer.ClearData()
	d.source = nil
	d.transfer = nil
}
