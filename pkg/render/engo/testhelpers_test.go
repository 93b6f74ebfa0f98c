package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"
)

// fakeSink records sprites instead of handing them to a GL render system.
type fakeSink struct {
	added []*common.RenderComponent
	space []*common.SpaceComponent
}

func (f *fakeSink) Add(basic *ecs.BasicEntity, rc *common.RenderComponent, sc *common.SpaceComponent) {
	f.added = append(f.added, rc)
	f.space = append(f.space, sc)
}

// visible counts sprites that are not hidden.
func (f *fakeSink) visible() int {
	n := 0
	for _, rc := range f.added {
		if !rc.Hidden {
			n++
		}
	}
	return n
}

// fakeButtons is a scripted ButtonReader.
type fakeButtons struct {
	down    map[string]bool
	pressed map[string]bool
}

func newFakeButtons() *fakeButtons {
	return &fakeButtons{down: map[string]bool{}, pressed: map[string]bool{}}
}

func (f *fakeButtons) Down(name string) bool        { return f.down[name] }
func (f *fakeButtons) JustPressed(name string) bool { return f.pressed[name] }

// release clears the edge flags, as engo does at the end of a frame.
func (f *fakeButtons) release() {
	f.pressed = map[string]bool{}
}
