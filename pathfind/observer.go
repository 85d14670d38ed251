package pathfind

import "github.com/katalvlaran/polyanya/geom"

// Observer receives callbacks as Query expands the search frontier. All
// methods are called synchronously from the goroutine running Query;
// implementations that need to be cheap on the hot path should buffer and
// defer expensive work.
type Observer interface {
	// OnPush is called whenever a SearchNode is added to the queue.
	OnPush(node *SearchNode)
	// OnPop is called whenever a SearchNode is popped off the queue for
	// expansion.
	OnPop(node *SearchNode)
	// OnPrune is called whenever a candidate successor is discarded before
	// ever reaching the queue (cul-de-sac, dead end, dominated root, or a
	// non-finite cost/bound), along with the reason.
	OnPrune(reason string, polygonTo int, root geom.Point)
}

// nopObserver is the default Observer: every callback is a no-op.
type nopObserver struct{}

func (nopObserver) OnPush(*SearchNode)                 {}
func (nopObserver) OnPop(*SearchNode)                  {}
func (nopObserver) OnPrune(string, int, geom.Point)     {}
