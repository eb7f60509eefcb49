// Package blf decodes Vector BLF (Binary Logging Format) bus-trace capture
// files into an ordered sequence of strongly-typed bus events: CAN classic,
// CAN FD, LIN, FlexRay, Ethernet, MOST, and marker/trigger records.
//
// The entry points are ReadBytes and ReadFile. Both walk the file's
// FileStatistics preamble, then every top-level LogContainer, inflating
// each one and dispatching its inner objects through the registry package.
// Only a malformed preamble aborts the read; every other recoverable
// failure becomes a Diagnostic and the reader keeps going, matching how a
// log-analysis tool should behave against imperfect field captures.
package blf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/tracebus/blf/container"
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/diag"
	"github.com/tracebus/blf/endian"
	"github.com/tracebus/blf/errs"
	"github.com/tracebus/blf/filestat"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/internal/hash"
	"github.com/tracebus/blf/internal/options"
	"github.com/tracebus/blf/internal/pool"
	"github.com/tracebus/blf/objects"
	"github.com/tracebus/blf/objtype"
	"github.com/tracebus/blf/registry"
)

// Result is the output of a full BLF read: the decoded preamble, the
// ordered bus-event sequence, and every recoverable anomaly encountered
// along the way.
type Result struct {
	Stats       *filestat.FileStatistics
	Objects     []objects.LogObject
	Diagnostics []diag.Diagnostic
}

// ContentHash returns a stable fingerprint of the decoded object sequence
// (type tag and timestamp, in order), independent of diagnostics. Tests use
// it to assert two reads of the same logical capture produced the same
// events without comparing every field of every object.
func (r *Result) ContentHash() uint64 {
	var buf bytes.Buffer
	for _, obj := range r.Objects {
		fmt.Fprintf(&buf, "%d:%d;", obj.Type(), obj.TimestampNs())
	}
	return hash.ID(buf.String())
}

// ReadFile opens path and decodes it as a BLF capture.
func ReadFile(path string, opts ...ReaderOption) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blf: read file: %w", err)
	}
	return ReadBytes(data, opts...)
}

// ReadBytes decodes data as a BLF capture already resident in memory.
func ReadBytes(data []byte, opts ...ReaderOption) (*Result, error) {
	cfg := defaultReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("blf: invalid reader options: %w", err)
	}

	if len(data) < filestat.Size {
		return nil, fmt.Errorf("%w: file shorter than preamble", errs.ErrBadPreamble)
	}
	stats, err := filestat.Read(data[:filestat.Size])
	if err != nil {
		return nil, err
	}

	r := &reader{cfg: cfg}
	c := cursor.New(data[filestat.Size:])
	r.readTopLevel(c, int64(filestat.Size))

	if cfg.strict && len(r.diagnostics) > 0 {
		return nil, fmt.Errorf("blf: strict mode: %d diagnostics: %s", len(r.diagnostics), r.diagnostics[0])
	}

	return &Result{Stats: stats, Objects: r.objects, Diagnostics: r.diagnostics}, nil
}

// reader accumulates state across the top-level and inner parse loops: the
// emitted objects, the diagnostics, and the options that govern both.
type reader struct {
	cfg         *ReaderConfig
	objects     []objects.LogObject
	diagnostics []diag.Diagnostic

	// seen maps a (kind, context) fingerprint to its entry's index in
	// diagnostics, so a condition that recurs verbatim at many offsets
	// (e.g. the same "unsupported compression method" on every container
	// in a file) collapses into one entry with an incrementing Count
	// instead of flooding the output.
	seen map[uint64]int
}

func (r *reader) record(offset int64, kind diag.Kind, err error) {
	r.cfg.logger.Warnf("%s at offset %d: %v", kind, offset, err)
	r.mergeDiagnostic(diag.New(offset, kind, err.Error()))
}

// mergeDiagnostic folds d into r.diagnostics by (kind, context) fingerprint,
// adding d.Count rather than assuming 1: replaying a sub-reader's
// already-deduped diagnostics during the parallel-merge phase must preserve
// however many times that sub-reader saw the condition, not reset it.
func (r *reader) mergeDiagnostic(d diag.Diagnostic) {
	fp := hash.Fingerprint(d.Kind.String(), d.Context)
	if idx, ok := r.seen[fp]; ok {
		r.diagnostics[idx].Count += d.Count
		return
	}
	if r.seen == nil {
		r.seen = make(map[uint64]int)
	}
	r.seen[fp] = len(r.diagnostics)
	r.diagnostics = append(r.diagnostics, d)
}

// readTopLevel walks the top-level object stream: iterate top-level
// objects, inflating every LogContainer it finds and skipping (with a
// diagnostic) anything else. With cfg.parallel set, LogContainer bodies are
// staged during this single sequential scan and their actual decode is
// deferred to decodeContainersParallel once the scan completes, so the scan
// itself (header walk, resync, dangling-tail accounting) stays on one
// goroutine and only the independent, CPU-heavy inflate+parse work fans out.
func (r *reader) readTopLevel(c *cursor.Cursor, baseOffset int64) {
	var jobs []containerJob
	for {
		h, start, ok := r.readHeader(c, baseOffset)
		if !ok {
			break
		}
		absStart := baseOffset + int64(start)

		if h.ObjectType == objtype.LogContainer {
			if r.cfg.parallel {
				if job, ok := r.stageContainerJob(c, h, absStart); ok {
					jobs = append(jobs, job)
				}
			} else {
				r.readContainer(c, h, absStart)
			}
		} else {
			r.record(absStart, diag.KindBadContainer,
				fmt.Errorf("unexpected top-level object type %s", h.ObjectType))
		}

		if !r.advanceTo(c, start+int(h.ObjectSize)) {
			break
		}
	}
	if len(jobs) > 0 {
		r.decodeContainersParallel(jobs)
	}
	r.recordDanglingTail(c, baseOffset)
}

// containerJob is one LogContainer's already-decoded header plus its raw
// payload bytes (container fields through compressed data), staged during
// the sequential top-level scan so a worker goroutine can decode it without
// sharing the scan's cursor.
type containerJob struct {
	h        *header.ObjectHeader
	absStart int64
	raw      *pool.ByteBuffer
}

// containerResult is one job's decode output, collected privately by its
// worker and merged into the shared reader afterward.
type containerResult struct {
	objects     []objects.LogObject
	diagnostics []diag.Diagnostic
}

// stageContainerJob copies a LogContainer's header-relative payload bytes
// (container fields plus compressed data) out of the scan cursor c into a
// pooled buffer, so the bytes survive past c's lifetime for out-of-order,
// concurrent decode.
func (r *reader) stageContainerJob(c *cursor.Cursor, h *header.ObjectHeader, absStart int64) (containerJob, bool) {
	payloadSize := int(h.PayloadSize())
	raw, err := c.ReadBytes(minInt(payloadSize, c.Remaining()))
	if err != nil {
		r.record(absStart, diag.KindTruncated, err)
		return containerJob{}, false
	}

	buf := pool.GetMergeBuffer()
	buf.Grow(len(raw))
	buf.MustWrite(raw)
	return containerJob{h: h, absStart: absStart, raw: buf}, true
}

// decodeContainersParallel decodes jobs across a worker pool bounded by
// GOMAXPROCS, each worker running the same sequential readContainer path
// against its own isolated sub-reader (no shared mutable state, so no
// mutex), then folds every result back into r in the jobs' original file
// order once all workers finish.
func (r *reader) decodeContainersParallel(jobs []containerJob) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]containerResult, len(jobs))
	work := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = r.decodeContainerJob(jobs[idx])
			}
		}()
	}
	for idx := range jobs {
		work <- idx
	}
	close(work)
	wg.Wait()

	for idx, job := range jobs {
		res := results[idx]
		r.objects = append(r.objects, res.objects...)
		for _, d := range res.diagnostics {
			r.mergeDiagnostic(d)
		}
		pool.PutMergeBuffer(job.raw)
	}
}

// decodeContainerJob runs the ordinary serial container decode against a
// throwaway sub-reader seeded with job's staged bytes, so concurrent workers
// never touch r's objects/diagnostics/seen directly.
func (r *reader) decodeContainerJob(job containerJob) containerResult {
	sub := &reader{cfg: r.cfg}
	sub.readContainer(cursor.New(job.raw.Bytes()), job.h, job.absStart)
	return containerResult{objects: sub.objects, diagnostics: sub.diagnostics}
}

// readHeader reads the next object header from c, transparently resyncing
// past any corrupted or structurally inconsistent header it finds along the
// way. Every resync run — however many bytes it spans — is reported as
// exactly one Diagnostic, not one per skipped byte, since a single
// corruption event is what a reader cares about. Returns false once fewer
// than a header's worth of bytes remain.
func (r *reader) readHeader(c *cursor.Cursor, baseOffset int64) (*header.ObjectHeader, int, bool) {
	for c.Remaining() >= header.BaseHeaderSize {
		start := c.Pos()
		absStart := baseOffset + int64(start)

		sigBytes, err := c.PeekBytes(4)
		if err != nil {
			return nil, 0, false
		}
		if endian.LittleEndian.Uint32(sigBytes) != header.SignatureLOBJ {
			skipped := r.resync(c)
			if skipped < 0 {
				r.record(absStart, diag.KindBadSignature,
					fmt.Errorf("%w: no further valid signature found", errs.ErrBadSignature))
				return nil, 0, false
			}
			r.record(absStart, diag.KindBadSignature,
				fmt.Errorf("%w: resynchronized after %d bytes", errs.ErrBadSignature, skipped))
			continue
		}

		h, err := header.Read(c)
		if err != nil {
			r.record(absStart, kindFor(err), err)
			if !r.advanceTo(c, start+1) {
				return nil, 0, false
			}
			continue
		}

		if err := h.Validate(); err != nil {
			r.record(absStart, diag.KindInconsistentHeader, err)
			if !r.advanceTo(c, start+1) {
				return nil, 0, false
			}
			continue
		}

		return h, start, true
	}
	return nil, 0, false
}

// resync advances c one byte at a time past a bad signature until the next
// 4 bytes match SignatureLOBJ, returning how many bytes were skipped, or -1
// if it ran off the end of the buffer first.
func (r *reader) resync(c *cursor.Cursor) int {
	skipped := 0
	for {
		if err := c.Skip(1); err != nil {
			return -1
		}
		skipped++
		peek, err := c.PeekBytes(4)
		if err != nil {
			return -1
		}
		if endian.LittleEndian.Uint32(peek) == header.SignatureLOBJ {
			return skipped
		}
	}
}

// recordDanglingTail reports a Truncated diagnostic for any bytes left over
// at the end of a parse loop that are too few to form another object
// header: a non-empty remainder that the loop itself never gets a chance to
// visit still needs to be surfaced, not silently dropped.
func (r *reader) recordDanglingTail(c *cursor.Cursor, baseOffset int64) {
	if c.Remaining() == 0 {
		return
	}
	r.record(baseOffset+int64(c.Pos()), diag.KindTruncated,
		fmt.Errorf("%w: %d trailing bytes, too few for another object header", errs.ErrTruncated, c.Remaining()))
}

// advanceTo moves c's position to the next 4-byte-aligned offset at or past
// target, relative to the start of c's buffer. If c is already past target
// (a decoder over-read), it only aligns from the current position forward —
// Cursor cannot seek backward. Returns false (and leaves c at
// end-of-buffer) if the resulting position would overshoot the buffer.
func (r *reader) advanceTo(c *cursor.Cursor, target int) bool {
	if target > c.Len() {
		_, _ = c.ReadBytes(c.Remaining())
		return false
	}
	if delta := target - c.Pos(); delta > 0 {
		if err := c.Skip(delta); err != nil {
			_, _ = c.ReadBytes(c.Remaining())
			return false
		}
	}
	if err := c.AlignTo(4); err != nil {
		_, _ = c.ReadBytes(c.Remaining())
		return false
	}
	return true
}

// kindFor maps a header.Read/cursor sentinel error to its Diagnostic kind.
func kindFor(err error) diag.Kind {
	switch {
	case errors.Is(err, errs.ErrBadSignature):
		return diag.KindBadSignature
	case errors.Is(err, errs.ErrUnknownHeaderVersion):
		return diag.KindUnknownHeaderVersion
	case errors.Is(err, errs.ErrTruncated):
		return diag.KindTruncated
	default:
		return diag.KindTruncated
	}
}

func (r *reader) readContainer(c *cursor.Cursor, h *header.ObjectHeader, absStart int64) {
	lc, err := container.Read(c, h)
	if err != nil {
		r.record(absStart, diag.KindTruncated, err)
		return
	}

	if r.cfg.maxContainerSize > 0 && lc.UncompressedSize > r.cfg.maxContainerSize {
		r.record(absStart, diag.KindBadContainer,
			fmt.Errorf("%w: uncompressed_size=%d, max=%d", errs.ErrContainerTooLarge, lc.UncompressedSize, r.cfg.maxContainerSize))
		return
	}

	inflated, err := lc.Inflate(c, h.PayloadSize())
	if err != nil {
		r.record(absStart, kindForContainer(err), err)
		return
	}
	defer pool.PutContainerBuffer(inflated)

	// Inner offsets are reported relative to the container's own start: once
	// decompressed, inner bytes no longer correspond 1:1 to file offsets.
	inner := cursor.New(inflated.Bytes())
	r.parseInner(inner, absStart)
}

func kindForContainer(err error) diag.Kind {
	if errors.Is(err, errs.ErrUnsupportedCompression) {
		return diag.KindUnsupportedCompression
	}
	return diag.KindBadContainer
}

// parseInner implements the inner object loop a decompressed container's
// payload is fed through: read header -> dispatch -> consume object_size ->
// align to 4 bytes. Nested LogContainer objects are unexpected and skipped.
func (r *reader) parseInner(c *cursor.Cursor, baseOffset int64) {
	for {
		h, start, ok := r.readHeader(c, baseOffset)
		if !ok {
			break
		}
		absStart := baseOffset + int64(start)

		if h.ObjectType == objtype.LogContainer {
			r.record(absStart, diag.KindBadContainer, fmt.Errorf("nested LogContainer skipped"))
		} else {
			payloadSize := int(h.PayloadSize())
			body, err := c.SubCursor(minInt(payloadSize, c.Remaining()))
			if err != nil {
				r.record(absStart, diag.KindTruncated, err)
				if !r.advanceTo(c, start+int(h.ObjectSize)) {
					return
				}
				continue
			}

			obj, skip, err := registry.Decode(h.ObjectType, body, h)
			if err != nil {
				r.record(absStart, diag.KindTruncated, err)
			} else if !skip {
				r.objects = append(r.objects, obj)
			}
		}

		if !r.advanceTo(c, start+int(h.ObjectSize)) {
			return
		}
	}
	r.recordDanglingTail(c, baseOffset)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
