package types

// Sizes carries the platform word size and maximum alignment the checker
// uses to evaluate size_of/align_of/offset_of (spec.md §4.4's builtin
// procedure table), overridable per project via the [sizes] table in a
// project manifest.
type Sizes struct {
	WordSize uint64 // bytes in a pointer/int/uint.
	MaxAlign uint64 // the largest alignment any type may request.
}

// DefaultSizes matches a 64-bit target: 8-byte words, 8-byte max alignment.
func DefaultSizes() Sizes { return Sizes{WordSize: 8, MaxAlign: 8} }

// SizeOf returns the size in bytes of id under sizes. Layout computation
// never fails or emits diagnostics; an invalid TypeID sizes as 0, and
// callers are responsible for having already rejected it upstream.
func (in *Interner) SizeOf(id TypeID, sizes Sizes) uint64 {
	t, ok := in.Lookup(id)
	if !ok {
		return 0
	}
	switch t.Kind {
	case KindBool:
		return 1
	case KindInt, KindFloat:
		if t.Width == WidthAny {
			return sizes.WordSize
		}
		return uint64(t.Width) / 8
	case KindRune:
		return 4
	case KindString:
		return 2 * sizes.WordSize // {data pointer, length}
	case KindPointer, KindNilPointer:
		return sizes.WordSize
	case KindSlice:
		return 3 * sizes.WordSize // {data pointer, length, capacity}
	case KindArray:
		return uint64(t.Count) * in.SizeOf(t.Elem, sizes)
	case KindRecord:
		if t.Record == nil {
			return 0
		}
		in.Layout(id, sizes)
		return t.Record.Size
	case KindNamed:
		return in.SizeOf(t.Underlying, sizes)
	default:
		return 0
	}
}

// AlignOf returns the required alignment in bytes of id under sizes.
func (in *Interner) AlignOf(id TypeID, sizes Sizes) uint64 {
	t, ok := in.Lookup(id)
	if !ok {
		return 1
	}
	switch t.Kind {
	case KindRecord:
		if t.Record == nil {
			return 1
		}
		in.Layout(id, sizes)
		return t.Record.Align
	case KindArray:
		return in.AlignOf(t.Elem, sizes)
	case KindNamed:
		return in.AlignOf(t.Underlying, sizes)
	default:
		size := in.SizeOf(id, sizes)
		if size == 0 {
			return 1
		}
		if size > sizes.MaxAlign {
			return sizes.MaxAlign
		}
		return size
	}
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align uint64) uint64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}

// Layout computes and caches field offsets, size and alignment for a
// record type using a C-like sequential layout, the same strategy
// surge's layout-attrs comment describes as attribute-free: no field
// reordering, padding only to satisfy alignment.
func (in *Interner) Layout(id TypeID, sizes Sizes) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindRecord || t.Record == nil {
		return
	}
	info := t.Record
	if info.Offsets != nil {
		return // already computed
	}
	var offset, maxAlign uint64 = 0, 1
	offsets := make([]uint64, len(info.Fields))
	for i, f := range info.Fields {
		falign := in.AlignOf(f.Type, sizes)
		fsize := in.SizeOf(f.Type, sizes)
		offset = alignUp(offset, falign)
		offsets[i] = offset
		offset += fsize
		if falign > maxAlign {
			maxAlign = falign
		}
	}
	info.Offsets = offsets
	info.Align = maxAlign
	info.Size = alignUp(offset, maxAlign)
}

// OffsetOf returns the byte offset of field index fieldIndex within record
// id, computing layout on demand.
func (in *Interner) OffsetOf(id TypeID, fieldIndex int, sizes Sizes) (uint64, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindRecord || t.Record == nil {
		return 0, false
	}
	in.Layout(id, sizes)
	if fieldIndex < 0 || fieldIndex >= len(t.Record.Offsets) {
		return 0, false
	}
	return t.Record.Offsets[fieldIndex], true
}
