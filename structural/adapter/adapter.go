package adapter

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/naruneph/go-design-patterns/console"
	"github.com/naruneph/go-design-patterns/registry"
)

func init() {
	registry.Register(
		"structural_adapter",
		"Demonstrates adapting a record-oriented sink to the byte-stream interface consoles expect.",
		AdapterExample,
	)
}

// Record is the unit the record-oriented sink accepts.
type Record struct {
	Body string
}

// RecordSink consumes whole records. It is the interface the adapter
// bridges to from the byte-stream side.
type RecordSink interface {
	EmitRecord(Record)
}

// Journal is a RecordSink that retains records in memory.
type Journal struct {
	mu      sync.Mutex
	records []Record
}

func (j *Journal) EmitRecord(r Record) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, r)
}

// Records returns a copy of everything journaled so far.
func (j *Journal) Records() []Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.records)
}

// SinkAdapter lets a byte-stream writer drive a RecordSink. Every
// newline-terminated chunk of the stream becomes one record; a trailing
// partial line is held until its newline arrives.
type SinkAdapter struct {
	mu      sync.Mutex
	target  RecordSink
	pending []byte
}

// NewSinkAdapter returns an adapter forwarding to target.
// It panics if target is nil.
func NewSinkAdapter(target RecordSink) *SinkAdapter {
	if target == nil {
		panic("adapter: nil record sink")
	}
	return &SinkAdapter{target: target}
}

func (a *SinkAdapter) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = append(a.pending, p...)
	for {
		i := bytes.IndexByte(a.pending, '\n')
		if i < 0 {
			return len(p), nil
		}
		a.target.EmitRecord(Record{Body: string(a.pending[:i])})
		a.pending = a.pending[i+1:]
	}
}

func AdapterExample() {
	journal := &Journal{}

	c := console.New(
		console.WithName("journaled"),
		console.WithSink(NewSinkAdapter(journal)),
	)

	for _, msg := range []string{"first entry", "second entry", "third entry"} {
		if err := c.Emit(msg); err != nil {
			fmt.Println("emit:", err)
			return
		}
	}

	records := journal.Records()
	fmt.Println("the journal received", len(records), "records:")
	for _, r := range records {
		fmt.Println("  -", r.Body)
	}
}
