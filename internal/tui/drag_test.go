package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/projboard/internal/dragdrop"
	"github.com/thenoetrevino/projboard/internal/models"
)

// fakeTarget records the calls it receives
type fakeTarget struct {
	accept bool
	calls  []string
}

func (f *fakeTarget) DragOver(*dragdrop.DataTransfer) bool {
	f.calls = append(f.calls, "over")
	return f.accept
}

func (f *fakeTarget) Drop(*dragdrop.DataTransfer) {
	f.calls = append(f.calls, "drop")
}

func (f *fakeTarget) DragLeave(*dragdrop.DataTransfer) {
	f.calls = append(f.calls, "leave")
}

func TestDragState_Lifecycle(t *testing.T) {
	d := NewDragState()
	assert.False(t, d.Active())
	assert.False(t, d.Drop(&fakeTarget{}), "idle drop does nothing")

	d.Start(NewProjectItem(models.Project{ID: "p1"}, nil))
	assert.True(t, d.Active())
	assert.Equal(t, "p1", d.Transfer().GetData(dragdrop.MIMETextPlain))

	first := &fakeTarget{accept: true}
	second := &fakeTarget{accept: true}
	assert.True(t, d.Enter(first))
	assert.True(t, d.Enter(second))
	transfer := d.Transfer()
	assert.True(t, d.Drop(second))
	assert.Empty(t, transfer.Types(), "payload is cleared once the gesture ends")

	assert.Equal(t, []string{"over", "leave"}, first.calls)
	assert.Equal(t, []string{"over", "drop"}, second.calls)
	assert.False(t, d.Active())
	assert.Nil(t, d.Transfer())
}

func TestDragState_DropOnRefusingTarget(t *testing.T) {
	d := NewDragState()
	d.Start(NewProjectItem(models.Project{ID: "p1"}, nil))

	target := &fakeTarget{accept: false}
	assert.False(t, d.Enter(target))
	assert.False(t, d.Drop(target))

	assert.Equal(t, []string{"over"}, target.calls)
	assert.False(t, d.Active(), "a refused drop still ends the drag")
}

func TestDragState_Cancel(t *testing.T) {
	d := NewDragState()
	d.Start(NewProjectItem(models.Project{ID: "p1"}, nil))
	target := &fakeTarget{accept: true}
	d.Enter(target)

	d.Cancel()

	assert.Equal(t, []string{"over", "leave"}, target.calls)
	assert.False(t, d.Active())
}
