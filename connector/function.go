package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

const (
	functionMaxClients      = 125
	functionExtraFieldsFlag = 0x0800
	functionExtraClientFlag = 0x8000
)

// Function is the tag 0xF0 variant (spec.md §4.6): a client list, two flag
// words, a per-client flag vector whose width is version-gated, an
// optional thrall-source encoding, optional extra fields, and an optional
// trailing special client.
type Function struct {
	ClientIndices  []uint32
	FFlags         uint16
	Pattern        uint16
	ClientFlags    []uint32 // width on disk depends on lvver.Version.WideClientFlags
	HasThrall      uint16
	ThrallSources  [][]uint8 // per client, terminator byte excluded
	Field6         uint32
	Field7         uint32
	ExtraClient    uint32
	HasExtraClient bool
}

func (*Function) TypeTag() format.TypeTag { return format.TagFunction }

func (f *Function) ParsePayload(r *cursor.Reader, ctx Context) error {
	count, err := r.U2p2()
	if err != nil {
		return err
	}

	f.ClientIndices = make([]uint32, count)
	for i := range f.ClientIndices {
		idx, err := r.U2p2()
		if err != nil {
			return err
		}

		f.ClientIndices[i] = idx
	}

	fflags, err := r.U16()
	if err != nil {
		return err
	}

	f.FFlags = fflags

	pattern, err := r.U16()
	if err != nil {
		return err
	}

	f.Pattern = pattern

	f.ClientFlags = make([]uint32, count)
	for i := range f.ClientFlags {
		if ctx.Version.WideClientFlags() {
			v, err := r.U32()
			if err != nil {
				return err
			}

			f.ClientFlags[i] = v
		} else {
			v, err := r.U16()
			if err != nil {
				return err
			}

			f.ClientFlags[i] = uint32(v)
		}
	}

	if ctx.Version.HasThrallField() {
		hasThrall, err := r.U16()
		if err != nil {
			return err
		}

		f.HasThrall = hasThrall

		if hasThrall != 0 {
			f.ThrallSources = make([][]uint8, count)

			for i := range f.ThrallSources {
				var sources []uint8

				for {
					b, err := r.U8()
					if err != nil {
						return err
					}

					if b == 0 {
						break
					}

					if ctx.Version.ThrallOffsetByOne() {
						b--
					}

					sources = append(sources, b)
				}

				f.ThrallSources[i] = sources
			}
		}
	}

	if f.FFlags&functionExtraFieldsFlag != 0 {
		v6, err := r.U32()
		if err != nil {
			return err
		}

		v7, err := r.U32()
		if err != nil {
			return err
		}

		f.Field6, f.Field7 = v6, v7
	}

	if f.FFlags&functionExtraClientFlag != 0 {
		idx, err := r.U2p2()
		if err != nil {
			return err
		}

		f.ExtraClient = idx
		f.HasExtraClient = true
	}

	return nil
}

func (f *Function) WritePayload(w *cursor.Writer, ctx Context) {
	w.PutU2p2(uint32(len(f.ClientIndices)), false) //nolint:gosec
	for _, idx := range f.ClientIndices {
		w.PutU2p2(idx, false)
	}

	w.PutU16(f.FFlags)
	w.PutU16(f.Pattern)

	for _, flags := range f.ClientFlags {
		if ctx.Version.WideClientFlags() {
			w.PutU32(flags)
		} else {
			w.PutU16(uint16(flags)) //nolint:gosec
		}
	}

	if ctx.Version.HasThrallField() {
		w.PutU16(f.HasThrall)

		if f.HasThrall != 0 {
			for _, sources := range f.ThrallSources {
				for _, src := range sources {
					b := src
					if ctx.Version.ThrallOffsetByOne() {
						b++
					}

					w.PutU8(b)
				}

				w.PutU8(0)
			}
		}
	}

	if f.FFlags&functionExtraFieldsFlag != 0 {
		w.PutU32(f.Field6)
		w.PutU32(f.Field7)
	}

	if f.FFlags&functionExtraClientFlag != 0 {
		w.PutU2p2(f.ExtraClient, false)
	}
}

func (f *Function) Sanity(selfIndex, catalogSize int, sink *diag.Sink) {
	if len(f.ClientIndices) > functionMaxClients {
		sink.Addf(diag.InvariantViolation, selfIndex, "function client count %d exceeds %d", len(f.ClientIndices), functionMaxClients)
	}

	for _, idx := range f.ClientIndices {
		if int(idx) >= catalogSize {
			sink.Addf(diag.InvariantViolation, selfIndex, "function client index %d out of range", idx)
		}
	}

	if f.HasExtraClient && int(f.ExtraClient) >= catalogSize {
		sink.Addf(diag.InvariantViolation, selfIndex, "function extra client index %d out of range", f.ExtraClient)
	}
}
