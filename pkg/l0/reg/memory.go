package reg

import (
	"encoding/binary"
	"io"
	"sort"
	"sync"

	"github.com/marcinbor85/gohex"
)

// ReadHook computes the value returned for a read, given the stored value.
type ReadHook func(addr Addr, stored uint32) uint32

// WriteHook is called on a write with the previous and the written value,
// and returns the value to be stored.
type WriteHook func(addr Addr, old, val uint32) uint32

// Memory is a Bus backed by a sparse register file.
// Unwritten registers read as zero. Hooks give individual registers
// hardware behavior (self-clearing bits, read-only fields, side effects).
// Hooks run without the internal lock held and may use Peek and Poke.
type Memory struct {
	lock   sync.Mutex
	words  map[Addr]uint32
	reads  map[Addr]ReadHook
	writes map[Addr]WriteHook
}

// NewMemory creates an empty register file.
func NewMemory() *Memory {
	return &Memory{
		words:  make(map[Addr]uint32),
		reads:  make(map[Addr]ReadHook),
		writes: make(map[Addr]WriteHook),
	}
}

// OnRead installs a read hook for addr, replacing any existing one.
func (m *Memory) OnRead(addr Addr, hook ReadHook) *Memory {
	m.lock.Lock()
	m.reads[addr] = hook
	m.lock.Unlock()
	return m
}

// OnWrite installs a write hook for addr, replacing any existing one.
func (m *Memory) OnWrite(addr Addr, hook WriteHook) *Memory {
	m.lock.Lock()
	m.writes[addr] = hook
	m.lock.Unlock()
	return m
}

// Read implements Bus.
func (m *Memory) Read(addr Addr) uint32 {
	m.lock.Lock()
	val, hook := m.words[addr], m.reads[addr]
	m.lock.Unlock()
	if hook != nil {
		return hook(addr, val)
	}
	return val
}

// Write implements Bus.
func (m *Memory) Write(addr Addr, val uint32) {
	m.lock.Lock()
	old, hook := m.words[addr], m.writes[addr]
	m.lock.Unlock()
	if hook != nil {
		val = hook(addr, old, val)
	}
	m.Poke(addr, val)
}

// Peek reads the stored value without running hooks.
func (m *Memory) Peek(addr Addr) uint32 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.words[addr]
}

// Poke stores a value without running hooks.
func (m *Memory) Poke(addr Addr, val uint32) {
	m.lock.Lock()
	m.words[addr] = val
	m.lock.Unlock()
}

// Reset clears all stored values. Hooks are kept.
func (m *Memory) Reset() {
	m.lock.Lock()
	m.words = make(map[Addr]uint32)
	m.lock.Unlock()
}

// DumpHex writes the non-zero registers as Intel HEX, little-endian,
// coalescing adjacent registers into one segment.
func (m *Memory) DumpHex(w io.Writer) error {
	m.lock.Lock()
	addrs := make([]Addr, 0, len(m.words))
	for addr, val := range m.words {
		if val != 0 {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	var segs []segment
	for _, addr := range addrs {
		var word [4]byte
		binary.LittleEndian.PutUint32(word[:], m.words[addr])
		if n := len(segs); n > 0 && segs[n-1].end() == addr {
			segs[n-1].data = append(segs[n-1].data, word[:]...)
			continue
		}
		segs = append(segs, segment{addr: addr, data: word[:]})
	}
	m.lock.Unlock()

	hex := gohex.NewMemory()
	for _, seg := range segs {
		if err := hex.AddBinary(uint32(seg.addr), seg.data); err != nil {
			return err
		}
	}
	return hex.DumpIntelHex(w, 16)
}

// LoadHex stores register values from an Intel HEX image produced by DumpHex.
// Hooks are not run.
func (m *Memory) LoadHex(r io.Reader) error {
	hex := gohex.NewMemory()
	if err := hex.ParseIntelHex(r); err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, seg := range hex.GetDataSegments() {
		for off := 0; off+4 <= len(seg.Data); off += 4 {
			m.words[Addr(seg.Address).Offset(uint32(off))] = binary.LittleEndian.Uint32(seg.Data[off:])
		}
	}
	return nil
}

type segment struct {
	addr Addr
	data []byte
}

func (s *segment) end() Addr {
	return s.addr.Offset(uint32(len(s.data)))
}
