package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

const clusterMaxClients = 500

// Cluster is tag 0x50: a flat list of client catalog indices (spec.md §4.3).
type Cluster struct {
	ClientIndices []uint16
}

func (*Cluster) TypeTag() format.TypeTag { return format.TagCluster }

func (c *Cluster) ParsePayload(r *cursor.Reader, _ Context) error {
	n, err := r.U16()
	if err != nil {
		return err
	}

	c.ClientIndices = make([]uint16, n)

	for i := range c.ClientIndices {
		v, err := r.U16()
		if err != nil {
			return err
		}

		c.ClientIndices[i] = v
	}

	return nil
}

func (c *Cluster) WritePayload(w *cursor.Writer, _ Context) {
	w.PutU16(uint16(len(c.ClientIndices))) //nolint:gosec

	for _, v := range c.ClientIndices {
		w.PutU16(v)
	}
}

func (c *Cluster) Sanity(selfIndex, catalogSize int, sink *diag.Sink) {
	if len(c.ClientIndices) > clusterMaxClients {
		sink.Addf(diag.InvariantViolation, selfIndex, "cluster client count %d exceeds %d", len(c.ClientIndices), clusterMaxClients)
	}

	for _, idx := range c.ClientIndices {
		if int(idx) >= catalogSize {
			sink.Addf(diag.InvariantViolation, selfIndex, "cluster client index %d out of range", idx)
		}
	}
}
