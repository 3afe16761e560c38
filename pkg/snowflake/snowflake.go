// Package snowflake issues process-unique, time-ordered ids for forwarded submissions.
package snowflake

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

func init() {
	node, _ = snowflake.NewNode(0)
}

// Init sets the node id (0-1023) used by NextID.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next id for the configured node.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	return n.Generate().Int64()
}

// NextString is NextID in its decimal form, as sent on the wire.
func NextString() string {
	mu.RLock()
	n := node
	mu.RUnlock()
	return n.Generate().String()
}
