package costmap

import "go.viam.com/mppi/utils"

// lineIterator walks the cells of a Bresenham line from (x0, y0) to (x1, y1), both ends included.
type lineIterator struct {
	x, y         int
	xInc1, xInc2 int
	yInc1, yInc2 int
	den, num     int
	numAdd       int
	numPixels    int
	curPixel     int
}

func newLineIterator(x0, y0, x1, y1 int) *lineIterator {
	it := &lineIterator{x: x0, y: y0}
	deltaX := utils.AbsInt(x1 - x0)
	deltaY := utils.AbsInt(y1 - y0)

	if x1 >= x0 {
		it.xInc1, it.xInc2 = 1, 1
	} else {
		it.xInc1, it.xInc2 = -1, -1
	}
	if y1 >= y0 {
		it.yInc1, it.yInc2 = 1, 1
	} else {
		it.yInc1, it.yInc2 = -1, -1
	}

	if deltaX >= deltaY {
		// x is the driving axis
		it.xInc1 = 0
		it.yInc2 = 0
		it.den = deltaX
		it.num = deltaX / 2
		it.numAdd = deltaY
		it.numPixels = deltaX
	} else {
		it.xInc2 = 0
		it.yInc1 = 0
		it.den = deltaY
		it.num = deltaY / 2
		it.numAdd = deltaX
		it.numPixels = deltaY
	}
	return it
}

func (it *lineIterator) valid() bool {
	return it.curPixel <= it.numPixels
}

func (it *lineIterator) advance() {
	it.num += it.numAdd
	if it.num >= it.den {
		it.num -= it.den
		it.x += it.xInc1
		it.y += it.yInc1
	}
	it.x += it.xInc2
	it.y += it.yInc2
	it.curPixel++
}
