package game

import (
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/iburimskiy/bokeh/internal/config"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type circle struct {
	x, y, r float64
	clr     color.RGBA
	mode    Composite
}

// recordCanvas remembers every drawing call.
type recordCanvas struct {
	w, h      int
	mode      Composite
	ops       []string
	circles   []circle
	gradients int
}

func newRecordCanvas(w, h int) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordCanvas) Clear() {
	c.ops = append(c.ops, "clear")
	c.circles = nil
}

func (c *recordCanvas) SetComposite(mode Composite) {
	c.ops = append(c.ops, "composite:"+mode.String())
	c.mode = mode
}

func (c *recordCanvas) FillCircle(x, y, r float64, clr color.Color) {
	c.ops = append(c.ops, "circle")
	c.circles = append(c.circles, circle{x: x, y: y, r: r, clr: color.RGBAModel.Convert(clr).(color.RGBA), mode: c.mode})
}

func (c *recordCanvas) FillRadialGradient(cx, cy, r0, r1 float64, stops []ColorStop) {
	c.ops = append(c.ops, "gradient")
	c.gradients++
}

func testSettings() config.Settings {
	return config.Settings{
		EmissionRate: 4,
		MinLife:      5,
		LifeRange:    0,
		MinAngle:     0,
		AngleRange:   360,
		MinSpeed:     10,
		SpeedRange:   15,
		MinSize:      30,
		SizeRange:    100,
		Color:        config.RGB{R: 151, G: 242, B: 201},
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
