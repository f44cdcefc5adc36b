package partition

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSchemaIncomplete is returned when a Schema lacks a required column name.
var ErrSchemaIncomplete = errors.New("partition: schema column name is empty")

// Record is one column-addressed row of a vertex or edge table.
// Identifier columns must hold integer values; group columns may hold
// integers or strings.
type Record map[string]any

// Schema names the table columns the engine reads. It realizes the
// configuration surface of the declaration layer:
//
//   - VertexID — the vertex-table identifier column.
//   - Src, Dest — the edge-table endpoint columns.
//   - GroupBy — discriminator columns, in order; empty means ungrouped.
type Schema struct {
	VertexID string
	Src      string
	Dest     string
	GroupBy  []string
}

func (s Schema) checkVertex() error {
	if s.VertexID == "" {
		return fmt.Errorf("%w: VertexID", ErrSchemaIncomplete)
	}
	return s.checkGroupBy()
}

func (s Schema) checkEdge() error {
	if s.Src == "" {
		return fmt.Errorf("%w: Src", ErrSchemaIncomplete)
	}
	if s.Dest == "" {
		return fmt.Errorf("%w: Dest", ErrSchemaIncomplete)
	}
	return s.checkGroupBy()
}

func (s Schema) checkGroupBy() error {
	for i, col := range s.GroupBy {
		if col == "" {
			return fmt.Errorf("%w: GroupBy[%d]", ErrSchemaIncomplete, i)
		}
	}
	return nil
}

// intColumn extracts an integer identifier from rec[col].
func intColumn(rec Record, row int, col string) (int64, error) {
	raw, ok := rec[col]
	if !ok {
		return 0, fmt.Errorf("%w: row %d, column %q", ErrColumnMissing, row, col)
	}
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: row %d, column %q holds %T, want integer",
			ErrColumnType, row, col, raw)
	}
}

// groupColumn renders one discriminator column as a key part.
func groupColumn(rec Record, row int, col string) (string, error) {
	raw, ok := rec[col]
	if !ok {
		return "", fmt.Errorf("%w: row %d, column %q", ErrColumnMissing, row, col)
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	default:
		return "", fmt.Errorf("%w: row %d, column %q holds %T, want string or integer",
			ErrColumnType, row, col, raw)
	}
}

func groupOf(rec Record, row int, cols []string) (GroupKey, error) {
	if len(cols) == 0 {
		return NoGroup, nil
	}
	parts := make([]string, len(cols))
	for i, col := range cols {
		p, err := groupColumn(rec, row, col)
		if err != nil {
			return NoGroup, err
		}
		parts[i] = p
	}
	return MakeGroupKey(parts...), nil
}

// VerticesFromRecords maps vertex-table records onto Vertex rows using
// s.VertexID and s.GroupBy. Errors identify the offending record index
// and column.
func VerticesFromRecords(recs []Record, s Schema) ([]Vertex, error) {
	if err := s.checkVertex(); err != nil {
		return nil, err
	}
	out := make([]Vertex, 0, len(recs))
	for row, rec := range recs {
		id, err := intColumn(rec, row, s.VertexID)
		if err != nil {
			return nil, err
		}
		g, err := groupOf(rec, row, s.GroupBy)
		if err != nil {
			return nil, err
		}
		out = append(out, Vertex{ID: id, Group: g})
	}
	return out, nil
}

// EdgesFromRecords maps edge-table records onto Edge rows using s.Src,
// s.Dest and s.GroupBy.
func EdgesFromRecords(recs []Record, s Schema) ([]Edge, error) {
	if err := s.checkEdge(); err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(recs))
	for row, rec := range recs {
		src, err := intColumn(rec, row, s.Src)
		if err != nil {
			return nil, err
		}
		dest, err := intColumn(rec, row, s.Dest)
		if err != nil {
			return nil, err
		}
		g, err := groupOf(rec, row, s.GroupBy)
		if err != nil {
			return nil, err
		}
		out = append(out, Edge{Src: src, Dest: dest, Group: g})
	}
	return out, nil
}
