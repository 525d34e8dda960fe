// Package dragdrop models a drag gesture between board components: a
// MIME-typed payload carried from a Draggable source to a DragTarget.
package dragdrop

import "slices"

// MIMETextPlain is the payload format used for project ids
const MIMETextPlain = "text/plain"

// Effect describes what a drop is allowed to do with the dragged item
type Effect string

const (
	EffectNone Effect = "none"
	EffectMove Effect = "move"
)

// DataTransfer carries string payloads keyed by format for the duration of
// one drag gesture.
type DataTransfer struct {
	EffectAllowed Effect

	types []string
	data  map[string]string
}

// NewDataTransfer creates an empty payload
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{
		EffectAllowed: EffectNone,
		data:          make(map[string]string),
	}
}

// SetData stores data under format. Re-setting a format keeps its
// original position in Types.
func (d *DataTransfer) SetData(format, data string) {
	if d.data == nil {
		d.data = make(map[string]string)
	}
	if _, exists := d.data[format]; !exists {
		d.types = append(d.types, format)
	}
	d.data[format] = data
}

// GetData returns the data stored under format, or "" if none
func (d *DataTransfer) GetData(format string) string {
	if d == nil {
		return ""
	}
	return d.data[format]
}

// Types returns the stored formats in the order they were first set
func (d *DataTransfer) Types() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.types)
}

// HasType reports whether the first stored format is format.
// Drop targets only inspect the leading type.
func (d *DataTransfer) HasType(format string) bool {
	if d == nil || len(d.types) == 0 {
		return false
	}
	return d.types[0] == format
}

// ClearData removes every payload. Called once the gesture has ended.
func (d *DataTransfer) ClearData() {
	d.types = nil
	d.data = make(map[string]string)
}

// Draggable is a component that can start a drag gesture
type Draggable interface {
	// DragStart fills the payload when the gesture begins
	DragStart(dt *DataTransfer)
	// DragEnd is called when the gesture finishes, dropped or not
	DragEnd(dt *DataTransfer)
}

// DragTarget is a component that can receive a dropped payload
type DragTarget interface {
	// DragOver reports whether the target accepts the payload
	DragOver(dt *DataTransfer) bool
	// Drop consumes the payload
	Drop(dt *DataTransfer)
	// DragLeave is called when the gesture leaves the target
	DragLeave(dt *DataTransfer)
}
