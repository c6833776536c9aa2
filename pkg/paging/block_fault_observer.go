package paging

import (
	"log"
)

// BlockFaultObserver is notified whenever a write to a BlockTable
// touches a block index that has no block mapped yet, causing a new
// block to be allocated. Observers exist purely for instrumentation.
// They cannot influence the outcome of the write.
type BlockFaultObserver interface {
	BlockFaulted(blockIndex, logicalIndex int)
}

type nopBlockFaultObserver struct{}

func (nopBlockFaultObserver) BlockFaulted(blockIndex, logicalIndex int) {}

// NopBlockFaultObserver is an implementation of BlockFaultObserver
// that discards all events.
var NopBlockFaultObserver BlockFaultObserver = nopBlockFaultObserver{}

type loggingBlockFaultObserver struct {
	name string
}

// NewLoggingBlockFaultObserver creates a BlockFaultObserver that writes
// a line to the log for every block fault.
func NewLoggingBlockFaultObserver(name string) BlockFaultObserver {
	return loggingBlockFaultObserver{
		name: name,
	}
}

func (o loggingBlockFaultObserver) BlockFaulted(blockIndex, logicalIndex int) {
	log.Printf("Buffer %#v: Write to index %d triggered block fault, allocated block %d", o.name, logicalIndex, blockIndex)
}

// BlockFaultObservers is a list of BlockFaultObservers that are all
// notified of the same events, in order.
type BlockFaultObservers []BlockFaultObserver

// BlockFaulted forwards the event to all observers in the list.
func (l BlockFaultObservers) BlockFaulted(blockIndex, logicalIndex int) {
	for _, o := range l {
		o.BlockFaulted(blockIndex, logicalIndex)
	}
}
