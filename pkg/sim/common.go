package sim

import "sync"

// FrameCaster provides a subscriber and implements
// listener to cast notifications.
type FrameCaster struct {
	listeners []FrameListener
	lock      sync.RWMutex
}

// SubscribeFrames implements FrameSubscriber.
func (c *FrameCaster) SubscribeFrames(ln FrameListener) {
	c.lock.Lock()
	c.listeners = append(c.listeners, ln)
	c.lock.Unlock()
}

// FrameTransmitted implements FrameListener.
func (c *FrameCaster) FrameTransmitted(frame BusFrame) {
	c.lock.RLock()
	listeners := c.listeners
	c.lock.RUnlock()
	for _, ln := range listeners {
		ln.FrameTransmitted(frame)
	}
}
